package ports

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/product"
)

type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	Update(ctx context.Context, p *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetMany returns the products found among ids, keyed by id.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// ListLowStock returns active products with any counter under the low stock threshold.
	ListLowStock(ctx context.Context) ([]*product.Product, error)
}
