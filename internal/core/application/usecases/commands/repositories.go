// Package commands contains the write operations of the order lifecycle.
// Every handler validates its command, opens a unit of work, mutates the
// aggregates it loaded and commits once.
package commands

import (
	"context"

	"gestion/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	AttachmentRepoFactory interface {
		AttachmentRepository() ports.AttachmentRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	PushSubscriptionRepoFactory interface {
		PushSubscriptionRepository() ports.PushSubscriptionRepository
	}

	// PartyUoW covers client and supplier maintenance.
	PartyUoW interface {
		TxManager
		PartyRepoFactory
	}

	PartyUoWFactory interface {
		Create() PartyUoW
	}

	// ProductUoW covers catalogue maintenance and the low stock alert.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		OutboxRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// NotificationUoW covers the outbox and push subscriptions.
	NotificationUoW interface {
		TxManager
		OutboxRepoFactory
		PushSubscriptionRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans every aggregate touched by the order lifecycle.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate o, append history, enqueue notification
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		PartyRepoFactory
		ProductRepoFactory
		AttachmentRepoFactory
		OutboxRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
