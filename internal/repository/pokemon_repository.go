package repository

import (
	"fmt"
	"strings"

	"github.com/axellelanca/pokedex/internal/models"
	"gorm.io/gorm"
)

// PokemonRepository defines the storage operations behind the pokedex.
type PokemonRepository interface {
	FindPokemons(filter models.PokemonFilter, sort *models.PokemonSort, pagination models.Pagination) ([]models.Pokemon, error)
	FindPokemonByID(id uint) (*models.Pokemon, error)
	GetAllPokemons() ([]models.Pokemon, error)
	CreatePokemon(pokemon *models.Pokemon) error
	UpdatePokemon(pokemon *models.Pokemon) error
	DeletePokemon(id uint) error
	CountPokemons() (int64, error)
}

// GormPokemonRepository is the GORM implementation of PokemonRepository.
type GormPokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates and returns a new GormPokemonRepository.
func NewPokemonRepository(db *gorm.DB) *GormPokemonRepository {
	return &GormPokemonRepository{db: db}
}

// likeEscaper neutralizes LIKE wildcards in the name filter so the match is
// a literal substring match, not a pattern match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindPokemons runs the filtered, sorted, paginated list query. The sort
// field is already restricted to a known column by the service layer.
func (r *GormPokemonRepository) FindPokemons(filter models.PokemonFilter, sort *models.PokemonSort, pagination models.Pagination) ([]models.Pokemon, error) {
	query := r.db.Model(&models.Pokemon{})

	if filter.Name != "" {
		query = query.Where(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	if filter.HeightMin != nil {
		query = query.Where("height >= ?", *filter.HeightMin)
	}
	if filter.HeightMax != nil {
		query = query.Where("height <= ?", *filter.HeightMax)
	}
	if filter.WeightMin != nil {
		query = query.Where("weight >= ?", *filter.WeightMin)
	}
	if filter.WeightMax != nil {
		query = query.Where("weight <= ?", *filter.WeightMax)
	}
	if sort != nil {
		query = query.Order(fmt.Sprintf("%s %s", sort.Field, sort.Direction))
	}

	// Non-nil so an empty page serializes as [] rather than null.
	pokemons := make([]models.Pokemon, 0, pagination.Take)
	if err := query.Offset(pagination.Skip).Limit(pagination.Take).Find(&pokemons).Error; err != nil {
		return nil, fmt.Errorf("failed to list pokemons: %w", err)
	}
	return pokemons, nil
}

// FindPokemonByID fetches a single record by primary key. It returns the
// raw gorm error so callers can test for gorm.ErrRecordNotFound.
func (r *GormPokemonRepository) FindPokemonByID(id uint) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	if err := r.db.First(&pokemon, id).Error; err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetAllPokemons retrieves every record. Used by the image monitor and the
// CLI, never by the paginated API.
func (r *GormPokemonRepository) GetAllPokemons() ([]models.Pokemon, error) {
	var pokemons []models.Pokemon
	if err := r.db.Find(&pokemons).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all pokemons: %w", err)
	}
	return pokemons, nil
}

// CreatePokemon inserts a new record; gorm fills in the assigned id.
func (r *GormPokemonRepository) CreatePokemon(pokemon *models.Pokemon) error {
	if err := r.db.Create(pokemon).Error; err != nil {
		return fmt.Errorf("failed to create pokemon: %w", err)
	}
	return nil
}

// UpdatePokemon persists every field of an existing record.
func (r *GormPokemonRepository) UpdatePokemon(pokemon *models.Pokemon) error {
	if err := r.db.Save(pokemon).Error; err != nil {
		return fmt.Errorf("failed to update pokemon %d: %w", pokemon.ID, err)
	}
	return nil
}

// DeletePokemon removes a record by primary key.
func (r *GormPokemonRepository) DeletePokemon(id uint) error {
	if err := r.db.Delete(&models.Pokemon{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete pokemon %d: %w", id, err)
	}
	return nil
}

// CountPokemons counts the stored records.
func (r *GormPokemonRepository) CountPokemons() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Pokemon{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pokemons: %w", err)
	}
	return count, nil
}
