package repository

import (
	"testing"
	"time"

	"github.com/axellelanca/pokedex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepositoryCounts(t *testing.T) {
	repo := NewAuditRepository(newTestDB(t))

	for _, action := range []string{
		models.AuditActionCreate,
		models.AuditActionCreate,
		models.AuditActionUpdate,
		models.AuditActionDelete,
		models.AuditActionDelete,
		models.AuditActionDelete,
	} {
		require.NoError(t, repo.CreateAuditEntry(&models.AuditEntry{
			Action:      action,
			PokemonID:   1,
			PokemonName: "pikachu",
			Actor:       "admin",
			RemoteAddr:  "127.0.0.1",
			Timestamp:   time.Now(),
		}))
	}

	counts, err := repo.CountAuditEntriesByAction()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		models.AuditActionCreate: 2,
		models.AuditActionUpdate: 1,
		models.AuditActionDelete: 3,
	}, counts)
}

func TestAuditRepositoryCountsEmpty(t *testing.T) {
	repo := NewAuditRepository(newTestDB(t))

	counts, err := repo.CountAuditEntriesByAction()
	require.NoError(t, err)
	assert.Empty(t, counts)
}
