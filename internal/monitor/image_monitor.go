// Package monitor periodically verifies that stored image URLs still
// resolve. The API only checks that an image value is present, so this is
// the one place that notices a sprite link going dead.
package monitor

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/axellelanca/pokedex/internal/repository"
)

// ImageMonitor manages periodic reachability checks of every stored image
// URL. It keeps the last known state per record to notify on transitions.
type ImageMonitor struct {
	pokemonRepo repository.PokemonRepository
	interval    time.Duration
	knownStates map[uint]bool // record id -> reachable at last check
	mu          sync.Mutex    // protects knownStates
	httpClient  *http.Client
}

// NewImageMonitor creates and returns a new instance of ImageMonitor.
// interval determines how frequently the images are checked; a non-positive
// value would panic the ticker, so it falls back to one minute.
func NewImageMonitor(pokemonRepo repository.PokemonRepository, interval time.Duration) *ImageMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ImageMonitor{
		pokemonRepo: pokemonRepo,
		interval:    interval,
		knownStates: make(map[uint]bool),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Start runs the periodic check loop. It blocks, so callers run it on its
// own goroutine.
func (m *ImageMonitor) Start() {
	log.Printf("[MONITOR] Starting image monitor with interval of %v...", m.interval)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// One immediate pass before the first tick.
	m.checkImages()

	for range ticker.C {
		m.checkImages()
	}
}

// checkImages performs a reachability check on every stored image URL and
// logs any state change since the previous pass.
func (m *ImageMonitor) checkImages() {
	pokemons, err := m.pokemonRepo.GetAllPokemons()
	if err != nil {
		log.Printf("[MONITOR] ERROR retrieving pokemons for monitoring: %v", err)
		return
	}

	for _, pokemon := range pokemons {
		currentState := m.isImageReachable(pokemon.Image)

		m.mu.Lock()
		previousState, seen := m.knownStates[pokemon.ID]
		m.knownStates[pokemon.ID] = currentState
		m.mu.Unlock()

		if !seen {
			log.Printf("[MONITOR] Initial state for %s (%s): %s",
				pokemon.Name, pokemon.Image, formatState(currentState))
			continue
		}

		if currentState != previousState {
			log.Printf("[NOTIFICATION] Image of %s (%s) changed from %s to %s",
				pokemon.Name, pokemon.Image, formatState(previousState), formatState(currentState))
		}
	}
}

// isImageReachable performs an HTTP HEAD request against the image URL.
// 2xx and 3xx responses count as reachable.
func (m *ImageMonitor) isImageReachable(url string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Printf("[MONITOR] Error creating request for image '%s': %v", url, err)
		return false
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Printf("[MONITOR] Error accessing image '%s': %v", url, err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

func formatState(reachable bool) string {
	if reachable {
		return "REACHABLE"
	}
	return "UNREACHABLE"
}
