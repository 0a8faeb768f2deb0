package monitor

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestPokemonRepo(t *testing.T) repository.PokemonRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Pokemon{}))
	return repository.NewPokemonRepository(db)
}

func TestCheckImagesTracksStateChanges(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	t.Cleanup(server.Close)

	repo := newTestPokemonRepo(t)
	pokemon := &models.Pokemon{Name: "pikachu", Height: 4, Weight: 60, Image: server.URL + "/25.png"}
	require.NoError(t, repo.CreatePokemon(pokemon))

	m := NewImageMonitor(repo, time.Minute)

	m.checkImages()
	assert.True(t, m.knownStates[pokemon.ID], "image should start reachable")

	status.Store(http.StatusNotFound)
	m.checkImages()
	assert.False(t, m.knownStates[pokemon.ID], "404 should flip the state to unreachable")

	status.Store(http.StatusOK)
	m.checkImages()
	assert.True(t, m.knownStates[pokemon.ID], "recovery should flip the state back")
}

func TestNewImageMonitorClampsInterval(t *testing.T) {
	repo := newTestPokemonRepo(t)

	// Zero or negative intervals must never reach the ticker.
	assert.Equal(t, time.Minute, NewImageMonitor(repo, 0).interval)
	assert.Equal(t, time.Minute, NewImageMonitor(repo, -time.Second).interval)
	assert.Equal(t, 5*time.Minute, NewImageMonitor(repo, 5*time.Minute).interval)
}

func TestIsImageReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	m := NewImageMonitor(newTestPokemonRepo(t), time.Minute)

	assert.True(t, m.isImageReachable(server.URL))

	// A closed server means a transport error, not just a bad status.
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()
	assert.False(t, m.isImageReachable(closedURL))

	assert.False(t, m.isImageReachable("://not-a-url"))
}

func TestIsImageReachableRedirectCounts(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(target.Close)

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	t.Cleanup(redirecting.Close)

	m := NewImageMonitor(newTestPokemonRepo(t), time.Minute)
	assert.True(t, m.isImageReachable(redirecting.URL))
}
