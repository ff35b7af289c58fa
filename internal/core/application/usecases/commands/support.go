package commands

import (
	"context"
	"fmt"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/core/domain/services"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/errs"
)

func now() time.Time {
	return time.Now().UTC()
}

// activeParty loads id and checks it is an active party of the given kind.
func activeParty(ctx context.Context, repo ports.PartyRepository, id kernel.UUID, kind party.Kind) (*party.Party, error) {
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Kind() != kind {
		return nil, errs.NewValueIsInvalidErrorWithCause(kind.String(), fmt.Errorf("%s is a %s", id, p.Kind()))
	}
	if err := p.EnsureActive(); err != nil {
		return nil, err
	}
	return p, nil
}

// orderableProducts loads ids and checks every product exists, is active and
// is not the freight sentinel.
func orderableProducts(ctx context.Context, repo ports.ProductRepository, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	products, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		if p.IsFreight(order.FreightProductID) {
			return nil, order.ErrFreightLineIsManaged
		}
		if !p.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("%s is inactive", p.Name()))
		}
	}
	return products, nil
}

// reconcileLedger reloads the payments of o and rewrites its paid cache.
func reconcileLedger(ctx context.Context, repo ports.PaymentRepository, o *order.Order, at time.Time) error {
	payments, err := repo.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	return o.ReconcilePaid(services.NewPaymentLedger().Sum(payments), at)
}
