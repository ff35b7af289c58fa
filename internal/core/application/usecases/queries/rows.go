package queries

import (
	"context"
	"time"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The SQL in this package sticks to what both PostgreSQL and SQLite accept.

const orderSummaryColumns = `o.id, o.number, o.status,
	o.client_id, COALESCE(c.name, '') AS client_name,
	o.supplier_id, COALESCE(s.name, '') AS supplier_name,
	o.notes, o.total, o.paid, o.outstanding,
	o.freight_weight_grams, o.freight_cost, o.created_at, o.updated_at`

type orderSummaryRow struct {
	ID                 uuid.UUID
	Number             string
	Status             int
	ClientID           uuid.UUID
	ClientName         string
	SupplierID         uuid.UUID
	SupplierName       string
	Notes              string
	Total              decimal.Decimal
	Paid               decimal.Decimal
	Outstanding        decimal.Decimal
	FreightWeightGrams int64
	FreightCost        decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func orderSummaries(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Select(orderSummaryColumns).
		Joins("LEFT JOIN parties c ON c.id = o.client_id").
		Joins("LEFT JOIN parties s ON s.id = o.supplier_id")
}

func (r orderSummaryRow) toView() (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	clientID, err := kernel.UUIDFromBytes(r.ClientID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	supplierID, err := kernel.UUIDFromBytes(r.SupplierID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	return OrderSummary{
		ID:                 id,
		Number:             r.Number,
		Status:             order.Status(r.Status),
		ClientID:           clientID,
		ClientName:         r.ClientName,
		SupplierID:         supplierID,
		SupplierName:       r.SupplierName,
		Notes:              r.Notes,
		Total:              r.Total,
		Paid:               r.Paid,
		Outstanding:        r.Outstanding,
		FreightWeightGrams: r.FreightWeightGrams,
		FreightCost:        r.FreightCost,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}, nil
}

type attachmentRow struct {
	ID         uuid.UUID
	EntityType string
	EntityID   uuid.UUID
	Path       string
	FileName   string
	MimeType   string
	Size       int64
	CreatedAt  time.Time
}

func listAttachments(
	ctx context.Context,
	db *gorm.DB,
	urls URLResolver,
	entityType attachment.EntityType,
	entityID kernel.UUID,
) ([]AttachmentView, error) {
	var rows []attachmentRow
	err := db.WithContext(ctx).
		Table("attachments").
		Select("id, entity_type, entity_id, path, file_name, mime_type, size, created_at").
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID.Bytes()).
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]AttachmentView, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		eid, err := kernel.UUIDFromBytes(r.EntityID[:])
		if err != nil {
			return nil, err
		}
		views = append(views, AttachmentView{
			ID:         id,
			EntityType: attachment.EntityType(r.EntityType),
			EntityID:   eid,
			FileName:   r.FileName,
			MimeType:   r.MimeType,
			Size:       r.Size,
			URL:        urls.URL(r.Path),
			CreatedAt:  r.CreatedAt,
		})
	}
	return views, nil
}
