package ports

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error

	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	Delete(ctx context.Context, id kernel.UUID) error

	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
