package postgres

import (
	"context"

	"gorm.io/gorm"

	"freightflow/internal/pkg/errs"
)

// SequenceDTO represents one named counter row.
type SequenceDTO struct {
	Key   string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceProvider implements SequenceProvider on a postgres table with
// an atomic upsert. It is the fallback when no Redis instance is configured;
// correctness across process instances comes from the database, at the cost
// of one round trip per identifier.
type GormSequenceProvider struct {
	db *gorm.DB
}

// NewGormSequenceProvider creates a database-backed sequence provider.
func NewGormSequenceProvider(db *gorm.DB) *GormSequenceProvider {
	return &GormSequenceProvider{db: db}
}

// Next atomically increments and returns the counter for key. The first
// call for a fresh key returns 1.
func (p *GormSequenceProvider) Next(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, errs.NewValueIsRequiredError("key")
	}

	var value int64
	err := p.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (key, value)
		VALUES (?, 1)
		ON CONFLICT (key) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, key).Scan(&value).Error
	if err != nil {
		return 0, errs.NewGatewayErrorWithCause("sequence counter", err)
	}

	return value, nil
}
