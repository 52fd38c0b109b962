// Package postgres provides the GORM unit of work. One unit of work spans
// one business operation: repositories obtained from it share its
// transaction, and Commit stores the events of every tracked order in the
// outbox before the transaction commits.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/outboxrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per operation.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGormUnitOfWorkFactory creates the factory. clock stamps outbox rows;
// nil selects the system clock.
func NewGormUnitOfWorkFactory(db *gorm.DB, clock ports.Clock) *GormUnitOfWorkFactory {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &GormUnitOfWorkFactory{db: db, clock: clock}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		clock:             f.clock,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// saved in it. It is not safe for concurrent use.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	clock             ports.Clock
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again on an open unit of work is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending events of tracked orders to the outbox and
// commits. If the outbox write fails the transaction is rolled back.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushOrderEvents(ctx); err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. After a successful Commit it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// UserRepository returns a repository bound to the open transaction, or to
// the plain connection when none is open.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// OrderRepository returns a repository whose saved orders are tracked for the
// outbox.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// flushOrderEvents drains tracked orders in save order. An order saved twice
// is drained once because its events are cleared after the first write.
func (uow *GormUnitOfWork) flushOrderEvents(ctx context.Context) error {
	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)
	now := uow.clock.Now()

	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		if err := outbox.AppendOrderEvents(ctx, o.DomainEvents(), now); err != nil {
			return err
		}
		o.ClearDomainEvents()
	}

	return nil
}
