// Package postgres implements the Unit of Work over GORM and PostgreSQL.
//
// A unit of work opens one transaction and hands out repositories bound to it.
// Repositories obtained before Begin (or after Commit/Rollback) run on the
// plain connection.
//
//	uow := NewGormUnitOfWorkFactory(db, logger).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// safe to ignore. Orders written through the unit of work are tracked and
// logged at debug level once the transaction commits.
package postgres

import (
	"context"
	"slices"

	"gestion/internal/adapters/out/postgres/attachmentrepo"
	"gestion/internal/adapters/out/postgres/orderrepo"
	"gestion/internal/adapters/out/postgres/outboxrepo"
	"gestion/internal/adapters/out/postgres/partyrepo"
	"gestion/internal/adapters/out/postgres/paymentrepo"
	"gestion/internal/adapters/out/postgres/productrepo"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger.With(zap.String("component", "unit_of_work"))}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if err := uow.tx.Error; err != nil {
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		if written := uow.TrackedAggregates(); len(written) > 0 {
			uow.logger.Debug("transaction committed", zap.Stringers("aggregates", written))
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

func (uow *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	return partyrepo.NewGormPartyRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) AttachmentRepository() ports.AttachmentRepository {
	return attachmentrepo.NewGormAttachmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

func (uow *GormUnitOfWork) PushSubscriptionRepository() ports.PushSubscriptionRepository {
	return outboxrepo.NewGormSubscriptionRepository(uow.conn())
}

func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates lists the aggregates written in the open transaction, each
// once, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if !slices.ContainsFunc(ids, t.ID.IsEqual) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
