// Package workers hosts the goroutine pool that persists the asynchronous
// mutation audit trail behind the API.
package workers

import (
	"log"

	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
)

// StartAuditWorkers launches a pool of worker goroutines that drain
// auditEvents and persist one AuditEntry per event. Handlers enqueue with a
// non-blocking send, so a slow database never delays a response. Workers
// exit when the channel closes during shutdown.
func StartAuditWorkers(workerCount int, auditEvents <-chan models.AuditEvent, auditRepo repository.AuditRepository) {
	log.Printf("Starting %d audit worker(s)...", workerCount)
	for i := 0; i < workerCount; i++ {
		go auditWorker(auditEvents, auditRepo)
	}
}

// auditWorker is the loop executed by each worker goroutine.
func auditWorker(auditEvents <-chan models.AuditEvent, auditRepo repository.AuditRepository) {
	for event := range auditEvents {
		entry := &models.AuditEntry{
			Action:      event.Action,
			PokemonID:   event.PokemonID,
			PokemonName: event.PokemonName,
			Actor:       event.Actor,
			RemoteAddr:  event.RemoteAddr,
			Timestamp:   event.Timestamp,
		}

		// Log and move on; one failed entry must not stall the trail.
		if err := auditRepo.CreateAuditEntry(entry); err != nil {
			log.Printf("ERROR: failed to record %s audit entry for pokemon %d: %v",
				event.Action, event.PokemonID, err)
		}
	}
}
