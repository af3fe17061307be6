// Package postgres provides the GORM-based Unit of Work and repository
// wiring. A unit of work owns at most one database transaction; repositories
// obtained from it run inside that transaction while it is active and against
// the plain connection otherwise. Modified aggregates are tracked so that
// post-commit steps, such as notification enqueueing, can see what changed.
package postgres

import (
	"context"

	"brokerage/internal/adapters/out/postgres/accountrepo"
	"brokerage/internal/adapters/out/postgres/contentrepo"
	"brokerage/internal/adapters/out/postgres/declarationrepo"
	"brokerage/internal/adapters/out/postgres/notificationrepo"
	"brokerage/internal/adapters/out/postgres/orderrepo"
	"brokerage/internal/adapters/out/postgres/ticketrepo"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates isolated UnitOfWork instances over a shared
// GORM connection. Each command handler gets a fresh instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a single database transaction across the
// repositories of one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while a transaction is
// active is a no-op, so nested begins never stack.
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

// Commit finalizes the active transaction. Returns
// gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction. Returns
// gorm.ErrInvalidTransaction when none is active, which makes the usual
// deferred rollback after a commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the plain connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DeclarationRepository returns a declaration repository bound to the
// current transaction.
func (uow *GormUnitOfWork) DeclarationRepository() ports.DeclarationRepository {
	return declarationrepo.NewGormDeclarationRepository(uow.conn(), uow)
}

// TicketRepository returns a ticket repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TicketRepository() ports.TicketRepository {
	return ticketrepo.NewGormTicketRepository(uow.conn(), uow)
}

// AccountRepository returns an account repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// ContentRepository returns an article repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ContentRepository() ports.ContentRepository {
	return contentrepo.NewGormContentRepository(uow.conn(), uow)
}

// NotificationRepository returns an outbox repository bound to the current
// transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a modified aggregate. Repositories call it from
// Add and Update so post-commit steps can inspect what the transaction
// touched.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
