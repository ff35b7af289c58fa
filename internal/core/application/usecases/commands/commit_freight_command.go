package commands

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/services"
	"gestion/internal/pkg/guard"
)

var ErrCommitFreightCommandIsNotConstructed = errors.New(
	"CommitFreightCommand must be created via NewCommitFreightCommand constructor",
)

type CommitFreightCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCommitFreightCommand(orderID kernel.UUID) (CommitFreightCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CommitFreightCommand{}, err
	}
	return CommitFreightCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CommitFreightCommand) Validate() error {
	return c.guard.Validate(ErrCommitFreightCommandIsNotConstructed)
}

func (c CommitFreightCommand) OrderID() kernel.UUID { return c.orderID }

type CommitFreightCommandHandler struct {
	uowFactory UoWFactory
	calculator services.FreightCalculator
}

func NewCommitFreightCommandHandler(uowFactory UoWFactory, calculator services.FreightCalculator) CommitFreightCommandHandler {
	return CommitFreightCommandHandler{uowFactory: uowFactory, calculator: calculator}
}

// Handle recomputes freight from the current product weights, upserts the
// freight line and stores weight and cost on the order. Orders without regular
// line items return services.ErrFreightNotAvailable.
func (h *CommitFreightCommandHandler) Handle(ctx context.Context, cmd CommitFreightCommand) (services.Freight, error) {
	if err := cmd.Validate(); err != nil {
		return services.Freight{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Freight{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return services.Freight{}, err
	}

	lines := o.RegularLineItems()
	if len(lines) == 0 {
		return services.Freight{}, services.ErrFreightNotAvailable
	}

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID())
	}
	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return services.Freight{}, err
	}
	weights := make(map[kernel.UUID]int, len(products))
	for id, p := range products {
		weights[id] = p.WeightGrams()
	}

	freight, err := h.calculator.CalculateForOrder(o, weights)
	if err != nil {
		return services.Freight{}, err
	}

	if err := o.ApplyFreight(freight.WeightGrams(), freight.Cost(), now()); err != nil {
		return services.Freight{}, err
	}
	if err := orderRepo.Update(ctx, o); err != nil {
		return services.Freight{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return services.Freight{}, err
	}
	return freight, nil
}
