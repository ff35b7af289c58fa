package ports

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
)

type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row and replaces its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order, its line items and its status history.
	Delete(ctx context.Context, id kernel.UUID) error

	// NextNumber draws the next value of the order number sequence.
	NextNumber(ctx context.Context) (string, error)

	AppendStatusChange(ctx context.Context, change *order.StatusChange) error
}
