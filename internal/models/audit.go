package models

import "time"

// Actions recorded in the audit trail.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEntry records one successful mutation (create, update or delete) in
// the database. Entries are written asynchronously by the audit workers and
// are never read on the request path.
type AuditEntry struct {
	// ID is the primary key with auto-increment functionality
	ID uint `gorm:"primaryKey"`

	// Action is the mutation kind, indexed so stats can aggregate per action
	Action string `gorm:"size:16;not null;index"`

	// PokemonID references the mutated record. Deliberately not a foreign
	// key: the audit row must survive the record's deletion.
	PokemonID uint `gorm:"index"`

	// PokemonName is denormalized for the same reason
	PokemonName string `gorm:"size:255"`

	// Actor is the basic-auth username that performed the mutation
	Actor string `gorm:"size:255"`

	// RemoteAddr is the client IP, sized for both IPv4 and IPv6
	RemoteAddr string `gorm:"size:50"`

	// Timestamp records when the mutation happened
	Timestamp time.Time
}

// AuditEvent is the raw event passed through the audit channel. This
// lightweight struct carries only the data needed to build an AuditEntry.
type AuditEvent struct {
	Action      string
	PokemonID   uint
	PokemonName string
	Actor       string
	RemoteAddr  string
	Timestamp   time.Time
}
