package commands

import (
	"context"
	"errors"
	"strings"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/core/domain/services"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrAdjustProductStockCommandIsNotConstructed = errors.New(
		"AdjustProductStockCommand must be created via NewAdjustProductStockCommand constructor",
	)
	ErrArchiveProductCommandIsNotConstructed = errors.New(
		"ArchiveProductCommand must be created via NewArchiveProductCommand constructor",
	)
	ErrReactivateProductCommandIsNotConstructed = errors.New(
		"ReactivateProductCommand must be created via NewReactivateProductCommand constructor",
	)
)

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   product.Details
	stock     product.Stock

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, details product.Details, stock product.Stock) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{productID: productID, details: details, stock: stock, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

type AdjustProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	stock     product.Stock

	guard guard.ConstructorGuard
}

func NewAdjustProductStockCommand(productID kernel.UUID, stock product.Stock) (AdjustProductStockCommand, error) {
	if err := productID.Validate(); err != nil {
		return AdjustProductStockCommand{}, err
	}
	return AdjustProductStockCommand{productID: productID, stock: stock, guard: guard.NewConstructorGuard()}, nil
}

func (c AdjustProductStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustProductStockCommandIsNotConstructed)
}

// ArchiveProductCommand takes a product out of the catalogue. Existing line
// items keep referencing it.
type ArchiveProductCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	productID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

func NewArchiveProductCommand(principal access.Principal, productID kernel.UUID, reason string) (ArchiveProductCommand, error) {
	var reasonErr error
	if strings.TrimSpace(reason) == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(productID.Validate(), reasonErr); err != nil {
		return ArchiveProductCommand{}, err
	}
	return ArchiveProductCommand{principal: principal, productID: productID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c ArchiveProductCommand) Validate() error {
	return c.guard.Validate(ErrArchiveProductCommandIsNotConstructed)
}

type ReactivateProductCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReactivateProductCommand(principal access.Principal, productID kernel.UUID) (ReactivateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return ReactivateProductCommand{}, err
	}
	return ReactivateProductCommand{principal: principal, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReactivateProductCommand) Validate() error {
	return c.guard.Validate(ErrReactivateProductCommandIsNotConstructed)
}

type ProductCommandHandler struct {
	uowFactory ProductUoWFactory
	composer   services.NotificationComposer
}

func NewProductCommandHandler(uowFactory ProductUoWFactory, composer services.NotificationComposer) ProductCommandHandler {
	return ProductCommandHandler{uowFactory: uowFactory, composer: composer}
}

func (h *ProductCommandHandler) Create(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.productID, cmd.details, cmd.stock)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h *ProductCommandHandler) AdjustStock(ctx context.Context, cmd AdjustProductStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.productID, func(p *product.Product) error {
		return p.AdjustStock(cmd.stock)
	})
}

func (h *ProductCommandHandler) Archive(ctx context.Context, cmd ArchiveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.ProductArchive); err != nil {
		return err
	}
	if cmd.productID.IsEqual(order.FreightProductID) {
		return order.ErrFreightLineIsManaged
	}
	return h.mutate(ctx, cmd.productID, func(p *product.Product) error {
		return p.Archive(cmd.reason, now())
	})
}

func (h *ProductCommandHandler) Reactivate(ctx context.Context, cmd ReactivateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.ProductArchive); err != nil {
		return err
	}
	if cmd.productID.IsEqual(order.FreightProductID) {
		return order.ErrFreightLineIsManaged
	}
	return h.mutate(ctx, cmd.productID, func(p *product.Product) error {
		p.Reactivate()
		return nil
	})
}

func (h *ProductCommandHandler) mutate(ctx context.Context, id kernel.UUID, fn func(*product.Product) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if err := repo.Update(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// EnqueueLowStock writes one low_stock notification covering every active
// product below the threshold. It reports whether a message was enqueued.
func (h *ProductCommandHandler) EnqueueLowStock(ctx context.Context) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().ListLowStock(ctx)
	if err != nil {
		return false, err
	}

	msg, err := h.composer.LowStock(products, now())
	if err != nil {
		return false, err
	}
	if msg == nil {
		return false, nil
	}

	if err := uow.OutboxRepository().Enqueue(ctx, msg); err != nil {
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
