package postgres

import (
	"context"
	"fmt"

	"gestion/internal/adapters/out/postgres/attachmentrepo"
	"gestion/internal/adapters/out/postgres/orderrepo"
	"gestion/internal/adapters/out/postgres/outboxrepo"
	"gestion/internal/adapters/out/postgres/partyrepo"
	"gestion/internal/adapters/out/postgres/paymentrepo"
	"gestion/internal/adapters/out/postgres/productrepo"
	"gestion/internal/adapters/out/postgres/rolerepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO.
func Models() []any {
	return []any{
		&partyrepo.PartyDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&paymentrepo.PaymentDTO{},
		&attachmentrepo.AttachmentDTO{},
		&outboxrepo.MessageDTO{},
		&outboxrepo.SubscriptionDTO{},
		&rolerepo.UserRoleDTO{},
	}
}

// Migrate creates or updates the schema, the order number sequence and the
// freight sentinel product. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + orderrepo.NumberSequence).Error; err != nil {
		return fmt.Errorf("create order number sequence: %w", err)
	}
	if err := productrepo.SeedFreightProduct(ctx, db); err != nil {
		return fmt.Errorf("seed freight product: %w", err)
	}
	return nil
}
