package repository

import (
	"fmt"

	"github.com/axellelanca/pokedex/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the storage operations for the mutation trail.
type AuditRepository interface {
	CreateAuditEntry(entry *models.AuditEntry) error
	CountAuditEntriesByAction() (map[string]int64, error)
}

// GormAuditRepository is the GORM implementation of AuditRepository.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates and returns a new GormAuditRepository.
func NewAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// CreateAuditEntry inserts a new audit record.
func (r *GormAuditRepository) CreateAuditEntry(entry *models.AuditEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// CountAuditEntriesByAction aggregates entries per action for stats output.
func (r *GormAuditRepository) CountAuditEntriesByAction() (map[string]int64, error) {
	type actionCount struct {
		Action string
		Count  int64
	}

	var rows []actionCount
	if err := r.db.Model(&models.AuditEntry{}).
		Select("action, COUNT(*) AS count").
		Group("action").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count audit entries: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Action] = row.Count
	}
	return counts, nil
}
