package services

import (
	"fmt"
	"testing"

	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService builds a PokemonService over an in-memory database.
func newTestService(t *testing.T) (*PokemonService, repository.PokemonRepository) {
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

	repo := repository.NewPokemonRepository(db)
	return NewPokemonService(repo), repo
}

func validPayload() models.PokemonPayload {
	return models.PokemonPayload{
		Name:   "pikachu",
		Height: float64(4),
		Weight: float64(60),
		Image:  "https://example.com/pikachu.png",
	}
}

func TestCreatePokemon(t *testing.T) {
	svc, repo := newTestService(t)

	pokemon, err := svc.CreatePokemon(validPayload())
	require.NoError(t, err)
	assert.NotZero(t, pokemon.ID)
	assert.Equal(t, "pikachu", pokemon.Name)
	assert.Equal(t, 4, pokemon.Height)
	assert.Equal(t, 60, pokemon.Weight)

	stored, err := repo.FindPokemonByID(pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, pokemon, stored)
}

func TestCreatePokemonInvalidWritesNothing(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.CreatePokemon(models.PokemonPayload{Height: "tall", Weight: float64(-1)})

	var validationErr *customerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 4)

	count, err := repo.CountPokemons()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdatePokemon(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreatePokemon(validPayload())
	require.NoError(t, err)

	updated, err := svc.UpdatePokemon(fmt.Sprint(created.ID), models.PokemonPayload{
		Name:   "raichu",
		Height: "8",
		Weight: float64(300),
		Image:  "https://example.com/raichu.png",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "raichu", updated.Name)
	assert.Equal(t, 8, updated.Height)
	assert.Equal(t, 300, updated.Weight)
}

func TestUpdatePokemonBodyCheckedBeforeID(t *testing.T) {
	svc, _ := newTestService(t)

	// Both the body and the id are broken; the body wins.
	_, err := svc.UpdatePokemon("not-a-number", models.PokemonPayload{})

	var validationErr *customerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdatePokemonIDErrors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdatePokemon("abc", validPayload())
	assert.ErrorIs(t, err, customerrors.ErrInvalidID)

	_, err = svc.UpdatePokemon("-1", validPayload())
	assert.ErrorIs(t, err, customerrors.ErrInvalidID)

	_, err = svc.UpdatePokemon("999", validPayload())
	assert.ErrorIs(t, err, customerrors.ErrPokemonNotFound)
}

func TestDeletePokemon(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.CreatePokemon(validPayload())
	require.NoError(t, err)

	removed, err := svc.DeletePokemon(fmt.Sprint(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Equal(t, "pikachu", removed.Name)

	_, err = repo.FindPokemonByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.DeletePokemon(fmt.Sprint(created.ID))
	assert.ErrorIs(t, err, customerrors.ErrPokemonNotFound)
}

func TestListPokemons(t *testing.T) {
	svc, repo := newTestService(t)

	for i := 1; i <= 15; i++ {
		require.NoError(t, repo.CreatePokemon(&models.Pokemon{
			Name:   fmt.Sprintf("pokemon-%02d", i),
			Height: i,
			Weight: i * 10,
			Image:  "https://example.com/sprite.png",
		}))
	}

	t.Run("first page by default", func(t *testing.T) {
		pokemons, page, err := svc.ListPokemons(ListParams{})
		require.NoError(t, err)
		assert.Len(t, pokemons, 10)
		assert.Equal(t, 1, page)
	})

	t.Run("second page holds the rest", func(t *testing.T) {
		pokemons, page, err := svc.ListPokemons(ListParams{Page: "2"})
		require.NoError(t, err)
		assert.Len(t, pokemons, 5)
		assert.Equal(t, 2, page)
	})

	t.Run("larger page size", func(t *testing.T) {
		pokemons, page, err := svc.ListPokemons(ListParams{PageSize: "20"})
		require.NoError(t, err)
		assert.Len(t, pokemons, 15)
		assert.Equal(t, 1, page)
	})

	t.Run("invalid page size rejected", func(t *testing.T) {
		_, _, err := svc.ListPokemons(ListParams{PageSize: "15"})
		assert.ErrorIs(t, err, customerrors.ErrInvalidPageSize)
	})

	t.Run("filter and sort combine", func(t *testing.T) {
		pokemons, _, err := svc.ListPokemons(ListParams{
			WeightGTE: "100",
			WeightLEQ: "140",
			OrderBy:   "weight",
			OrderDir:  "desc",
		})
		require.NoError(t, err)
		require.Len(t, pokemons, 5)
		assert.Equal(t, 140, pokemons[0].Weight)
		assert.Equal(t, 100, pokemons[4].Weight)
	})
}
