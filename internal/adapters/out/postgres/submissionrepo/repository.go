package submissionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// GormSubmissionRepository implements SubmissionRepository using GORM.
type GormSubmissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubmissionRepository creates a new GORM submission repository.
func NewGormSubmissionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubmissionRepository {
	return &GormSubmissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new submission to the database.
func (r *GormSubmissionRepository) Add(ctx context.Context, aggregate *bol.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing submission to the database. The full row is
// written: Select("*") forces gorm to persist zero values and clear columns
// that became null.
func (r *GormSubmissionRepository) Update(ctx context.Context, aggregate *bol.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SubmissionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a submission by ID.
func (r *GormSubmissionRepository) Get(ctx context.Context, id kernel.UUID) (*bol.Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a submission with a SELECT ... FOR UPDATE row lock
// so concurrent review decisions on the same submission serialize. Must run
// inside an active transaction.
func (r *GormSubmissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*bol.Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
