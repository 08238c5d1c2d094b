// internal/persist/postgres.go
package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UISnapshot is the single key-value row backing a persisted namespace.
type UISnapshot struct {
	Namespace string    `gorm:"primaryKey;size:255"`
	Data      []byte    `gorm:"type:bytea"`
	UpdatedAt time.Time
}

func (UISnapshot) TableName() string { return "ui_snapshots" }

// PostgresStore persists snapshots through gorm, one row per namespace,
// upserted on every save.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&UISnapshot{}); err != nil {
		return nil, fmt.Errorf("migrate ui_snapshots: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	var row UISnapshot
	err := p.db.WithContext(ctx).First(&row, "namespace = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres load: %w", err)
	}
	return row.Data, nil
}

func (p *PostgresStore) Save(ctx context.Context, namespace string, data []byte) error {
	row := UISnapshot{Namespace: namespace, Data: data, UpdatedAt: time.Now().UTC()}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("postgres save: %w", err)
	}
	return nil
}
