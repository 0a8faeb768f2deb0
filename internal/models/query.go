package models

// PokemonFilter narrows a list query. The zero value matches everything:
// Name filters by substring when non-empty, and each bound applies only when
// non-nil. Bounds are inclusive.
type PokemonFilter struct {
	Name      string
	HeightMin *int
	HeightMax *int
	WeightMin *int
	WeightMax *int
}

// PokemonSort selects the ordering of a list query. Field is one of name,
// height or weight; Direction is asc or desc.
type PokemonSort struct {
	Field     string
	Direction string
}

// Pagination is the resolved skip/take window of a list query.
type Pagination struct {
	Skip int
	Take int
}
