// Package postgres provides GORM-based implementations of the persistence
// ports: the Unit of Work coordinating submission and notification writes,
// and a database-backed sequence counter.
//
// Each business operation gets a fresh UnitOfWork instance with its own
// transaction state; concurrent operations never share one.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"freightflow/internal/adapters/out/postgres/notificationrepo"
	"freightflow/internal/adapters/out/postgres/submissionrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin on an already
// started unit of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SubmissionRepository returns a submission repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) SubmissionRepository() ports.SubmissionRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return submissionrepo.NewGormSubmissionRepository(db, uow)
}

// NotificationRepository returns a notification repository bound to the
// current transaction, or to the main connection when no transaction is
// active.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return notificationrepo.NewGormNotificationRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work, enabling post-commit processing such as outbox publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates modified during this unit of
// work, in modification order.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}
