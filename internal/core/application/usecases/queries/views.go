package queries

import (
	"time"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// OrderSummary is an order row with the names of its parties.
type OrderSummary struct {
	ID                 kernel.UUID
	Number             string
	Status             order.Status
	ClientID           kernel.UUID
	ClientName         string
	SupplierID         kernel.UUID
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

// LineItemView is a line item joined to its product.
type LineItemView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Brand       string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	Subtotal    decimal.Decimal
	IsFreight   bool
}

// PaymentView is one ledger row. RunningTotal accumulates chronologically up to
// and including this payment.
type PaymentView struct {
	ID           kernel.UUID
	Amount       decimal.Decimal
	Method       payment.Method
	PaidAt       time.Time
	Notes        string
	CreatedAt    time.Time
	RunningTotal decimal.Decimal
}

// PaymentHistory lists payments newest first. TotalPaid and Outstanding are
// computed from the ledger rows, not read from the order cache.
type PaymentHistory struct {
	Payments    []PaymentView
	TotalPaid   decimal.Decimal
	Outstanding decimal.Decimal
}

type StatusChangeView struct {
	From       order.Status
	To         order.Status
	ActorID    kernel.UUID
	OutOfOrder bool
	ChangedAt  time.Time
}

type AttachmentView struct {
	ID         kernel.UUID
	EntityType attachment.EntityType
	EntityID   kernel.UUID
	FileName   string
	MimeType   string
	Size       int64
	URL        string
	CreatedAt  time.Time
}

// URLResolver turns a stored object path into a public URL.
type URLResolver interface {
	URL(path string) string
}
