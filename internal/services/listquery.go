package services

import (
	"strconv"

	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
)

// ListParams carries the raw query-string values of a list request. Parsing
// lives in the service so every transport shares the same rules.
type ListParams struct {
	OrderBy   string
	OrderDir  string
	Name      string
	HeightGTE string
	HeightLEQ string
	WeightGTE string
	WeightLEQ string
	Page      string
	PageSize  string
}

// defaultPageSize applies when the client sends no pageSize at all.
const defaultPageSize = 10

// pageSizes enumerates the accepted pageSize values.
var pageSizes = map[int]bool{10: true, 20: true, 50: true}

// buildFilter translates the raw filter parameters. Bounds that fail to
// parse as integers are dropped (unbounded) rather than rejected.
func buildFilter(params ListParams) models.PokemonFilter {
	return models.PokemonFilter{
		Name:      params.Name,
		HeightMin: parseBound(params.HeightGTE),
		HeightMax: parseBound(params.HeightLEQ),
		WeightMin: parseBound(params.WeightGTE),
		WeightMax: parseBound(params.WeightLEQ),
	}
}

// parseBound reads one inclusive numeric bound, lenient on bad input.
func parseBound(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// buildSort resolves the sort column and direction. Only name, height and
// weight are sortable; any other value leaves the query unsorted.
func buildSort(orderBy, orderDir string) *models.PokemonSort {
	switch orderBy {
	case "name", "height", "weight":
	default:
		return nil
	}

	direction := "asc"
	if orderDir == "desc" {
		direction = "desc"
	}
	return &models.PokemonSort{Field: orderBy, Direction: direction}
}

// buildPagination derives the skip/take pair from page and pageSize. page
// parses leniently (default 1, clamped to at least 1) while pageSize must
// belong to the enumerated set.
func buildPagination(page, pageSize string) (models.Pagination, error) {
	take := defaultPageSize
	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil || !pageSizes[n] {
			return models.Pagination{}, customerrors.ErrInvalidPageSize
		}
		take = n
	}

	current := 1
	if n, err := strconv.Atoi(page); err == nil {
		current = n
	}
	if current < 1 {
		current = 1
	}

	return models.Pagination{Skip: take * (current - 1), Take: take}, nil
}
