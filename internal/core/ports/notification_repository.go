package ports

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
)

// OutboxRepository stores notification messages written inside business transactions.
type OutboxRepository interface {
	// Enqueue inserts a pending message and signals waiting dispatchers.
	Enqueue(ctx context.Context, m *notification.Message) error

	// ClaimPending locks up to limit pending messages, skipping rows locked by
	// other dispatchers.
	ClaimPending(ctx context.Context, limit int) ([]*notification.Message, error)

	Update(ctx context.Context, m *notification.Message) error
}

type PushSubscriptionRepository interface {
	// Save inserts or replaces the subscription with the same endpoint.
	Save(ctx context.Context, s *notification.Subscription) error

	// List returns the subscriptions of userID, or all when userID is nil.
	List(ctx context.Context, userID *kernel.UUID) ([]*notification.Subscription, error)

	Delete(ctx context.Context, endpoint string) error
}
