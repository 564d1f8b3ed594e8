// Package history records rebuild runs in the optional history database.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run is one successful rebuild.
type Run struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	RulesSource   string    `gorm:"size:512" json:"rules_source"`
	BalanceSource string    `gorm:"size:512" json:"balance_source"`
	Units         int       `json:"units"`
	Entries       int       `json:"entries"`
	Rows          int       `json:"rows"`
	Warnings      int       `json:"warnings"`
	Checksum      string    `gorm:"size:64;index" json:"checksum"`
	Published     string    `gorm:"size:512" json:"published,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the default table name.
func (Run) TableName() string {
	return "balance_runs"
}

// Repository stores and lists runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the runs table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Run{}.TableName(), err)
	}
	return nil
}

// Record inserts run, assigning an ID when it has none.
func (r *Repository) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	runs := []Run{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
