// Package services contains the business logic layer for the pokedex
// service: payload validation and normalization, translation of raw query
// parameters into storage filters, and the CRUD operations themselves.
package services

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
)

// PokemonService provides business logic methods for managing pokedex
// records. It acts as an intermediary between the HTTP handlers and the
// data repository.
type PokemonService struct {
	pokemonRepo repository.PokemonRepository
}

// NewPokemonService creates and returns a new instance of PokemonService.
func NewPokemonService(pokemonRepo repository.PokemonRepository) *PokemonService {
	return &PokemonService{
		pokemonRepo: pokemonRepo,
	}
}

// ListPokemons translates the raw list parameters and runs the filtered,
// sorted, paginated query. The second return value is the page echoed back
// to the client (skip/take + 1).
//
// Only pageSize is validated strictly; every other numeric parameter parses
// leniently (bad page falls back to 1, bad bounds drop to unbounded).
func (s *PokemonService) ListPokemons(params ListParams) ([]models.Pokemon, int, error) {
	pagination, err := buildPagination(params.Page, params.PageSize)
	if err != nil {
		return nil, 0, err
	}

	filter := buildFilter(params)
	sort := buildSort(params.OrderBy, params.OrderDir)

	pokemons, err := s.pokemonRepo.FindPokemons(filter, sort, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pokemons: %w", err)
	}

	return pokemons, pagination.Skip/pagination.Take + 1, nil
}

// CreatePokemon validates and normalizes the payload, then inserts a new
// record and returns it with its assigned id. Nothing is written when any
// field is invalid.
func (s *PokemonService) CreatePokemon(payload models.PokemonPayload) (*models.Pokemon, error) {
	in, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}

	pokemon := &models.Pokemon{
		Name:   in.Name,
		Height: in.Height,
		Weight: in.Weight,
		Image:  in.Image,
	}
	if err := s.pokemonRepo.CreatePokemon(pokemon); err != nil {
		return nil, fmt.Errorf("failed to create pokemon: %w", err)
	}

	return pokemon, nil
}

// UpdatePokemon replaces all four fields of an existing record and returns
// the updated value. The payload is validated before the id so a client
// with a broken body and a broken id hears about the body first; the id
// itself stays immutable.
func (s *PokemonService) UpdatePokemon(rawID string, payload models.PokemonPayload) (*models.Pokemon, error) {
	in, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}

	pokemon, err := s.findByRawID(rawID)
	if err != nil {
		return nil, err
	}

	pokemon.Name = in.Name
	pokemon.Height = in.Height
	pokemon.Weight = in.Weight
	pokemon.Image = in.Image

	if err := s.pokemonRepo.UpdatePokemon(pokemon); err != nil {
		return nil, fmt.Errorf("failed to update pokemon %d: %w", pokemon.ID, err)
	}

	return pokemon, nil
}

// DeletePokemon removes the record referenced by rawID and returns the
// removed value.
func (s *PokemonService) DeletePokemon(rawID string) (*models.Pokemon, error) {
	pokemon, err := s.findByRawID(rawID)
	if err != nil {
		return nil, err
	}

	if err := s.pokemonRepo.DeletePokemon(pokemon.ID); err != nil {
		return nil, fmt.Errorf("failed to delete pokemon %d: %w", pokemon.ID, err)
	}

	return pokemon, nil
}

// findByRawID parses and resolves a path id. Malformed or negative ids are
// ErrInvalidID; well-formed ids without a matching record are
// ErrPokemonNotFound.
func (s *PokemonService) findByRawID(rawID string) (*models.Pokemon, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 0 {
		return nil, customerrors.ErrInvalidID
	}

	pokemon, err := s.pokemonRepo.FindPokemonByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrPokemonNotFound
		}
		return nil, fmt.Errorf("failed to look up pokemon %d: %w", id, err)
	}

	return pokemon, nil
}
