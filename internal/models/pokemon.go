package models

// Pokemon represents one pokedex record in the database. Every column is
// NOT NULL: a record only reaches storage after its payload validated.
type Pokemon struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Height int    `gorm:"not null" json:"height"`
	Weight int    `gorm:"not null" json:"weight"`
	Image  string `gorm:"not null" json:"image"`
}

// PokemonPayload is the write-side input for create and update requests.
// Height and weight stay untyped because clients send them either as JSON
// numbers or as numeric strings; the service coerces them during validation.
type PokemonPayload struct {
	Name   string `json:"name"`
	Height any    `json:"height"`
	Weight any    `json:"weight"`
	Image  string `json:"image"`
}
