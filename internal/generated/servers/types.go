// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for EntityType.
const (
	EntityTypeClient   EntityType = "client"
	EntityTypeOrder    EntityType = "order"
	EntityTypeProduct  EntityType = "product"
	EntityTypeSupplier EntityType = "supplier"
)

// Defines values for NotFoundState.
const (
	NotFoundStateNotFound NotFoundState = "not_found"
)

// Defines values for OrderViewState.
const (
	OrderViewStateFound OrderViewState = "found"
)

// Defines values for PartyKind.
const (
	PartyKindClient   PartyKind = "client"
	PartyKindSupplier PartyKind = "supplier"
)

// ArchiveRequest defines model for ArchiveRequest.
type ArchiveRequest struct {
	Reason string `json:"reason"`
}

// Attachment defines model for Attachment.
type Attachment struct {
	CreatedAt  time.Time          `json:"createdAt"`
	EntityId   openapi_types.UUID `json:"entityId"`
	EntityType EntityType         `json:"entityType"`
	FileName   string             `json:"fileName"`
	Id         openapi_types.UUID `json:"id"`
	MimeType   string             `json:"mimeType"`
	Size       int64              `json:"size"`
	Url        string             `json:"url"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// EntityType defines model for EntityType.
type EntityType string

// Error defines model for Error.
type Error struct {
	Code    int       `json:"code"`
	Details *[]string `json:"details,omitempty"`
	Message string    `json:"message"`
}

// Freight defines model for Freight.
type Freight struct {
	Cost              Money  `json:"cost"`
	Display           string `json:"display"`
	Enabled           bool   `json:"enabled"`
	Kilograms         Money  `json:"kilograms"`
	StoredCost        *Money `json:"storedCost,omitempty"`
	StoredWeightGrams *int64 `json:"storedWeightGrams,omitempty"`
	UpToDate          *bool  `json:"upToDate,omitempty"`
	WeightGrams       int64  `json:"weightGrams"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Brand       *string            `json:"brand,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	IsFreight   bool               `json:"isFreight"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	Subtotal    Money              `json:"subtotal"`
	UnitCost    Money              `json:"unitCost"`
	UnitPrice   Money              `json:"unitPrice"`
}

// LineItemInput defines model for LineItemInput.
type LineItemInput struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
	UnitCost  *Money             `json:"unitCost,omitempty"`
	UnitPrice Money              `json:"unitPrice"`
}

// Money defines model for Money.
type Money = string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ClientId   openapi_types.UUID `json:"clientId"`
	Items      *[]LineItemInput   `json:"items,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	SupplierId openapi_types.UUID `json:"supplierId"`
}

// NewParty defines model for NewParty.
type NewParty struct {
	Address *string   `json:"address,omitempty"`
	Email   *string   `json:"email,omitempty"`
	Kind    PartyKind `json:"kind"`
	Name    string    `json:"name"`
	Phone   *string   `json:"phone,omitempty"`
	TaxId   *string   `json:"taxId,omitempty"`
}

// NewPayment defines model for NewPayment.
type NewPayment struct {
	Amount Money              `json:"amount"`
	Method PaymentMethod      `json:"method"`
	Notes  *string            `json:"notes,omitempty"`
	Notify *bool              `json:"notify,omitempty"`
	PaidAt openapi_types.Date `json:"paidAt"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Brand       *string `json:"brand,omitempty"`
	Category    *string `json:"category,omitempty"`
	CostPrice   Money   `json:"costPrice"`
	Name        string  `json:"name"`
	SalePrice   Money   `json:"salePrice"`
	Stock       Stock   `json:"stock"`
	WeightGrams int     `json:"weightGrams"`
}

// NotFound defines model for NotFound.
type NotFound struct {
	State NotFoundState `json:"state"`
}

// NotFoundState defines model for NotFound.State.
type NotFoundState string

// OrderStatus defines model for OrderStatus.
type OrderStatus = string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	ClientId           openapi_types.UUID `json:"clientId"`
	ClientName         string             `json:"clientName"`
	CreatedAt          time.Time          `json:"createdAt"`
	FreightCost        Money              `json:"freightCost"`
	FreightWeightGrams int64              `json:"freightWeightGrams"`
	Id                 openapi_types.UUID `json:"id"`
	Notes              *string            `json:"notes,omitempty"`
	Number             string             `json:"number"`
	Outstanding        Money              `json:"outstanding"`
	Paid               Money              `json:"paid"`
	Status             OrderStatus        `json:"status"`
	SupplierId         openapi_types.UUID `json:"supplierId"`
	SupplierName       string             `json:"supplierName"`
	Total              Money              `json:"total"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// OrderView defines model for OrderView.
type OrderView struct {
	Attachments []Attachment   `json:"attachments"`
	History     []StatusChange `json:"history"`
	Items       []LineItem     `json:"items"`
	Order       OrderSummary   `json:"order"`
	Payments    PaymentHistory `json:"payments"`
	State       OrderViewState `json:"state"`
}

// OrderViewState defines model for OrderView.State.
type OrderViewState string

// Party defines model for Party.
type Party struct {
	Active            bool               `json:"active"`
	Address           *string            `json:"address,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	DeactivatedAt     *time.Time         `json:"deactivatedAt,omitempty"`
	DeactivatedReason *string            `json:"deactivatedReason,omitempty"`
	Email             *string            `json:"email,omitempty"`
	Id                openapi_types.UUID `json:"id"`
	Kind              PartyKind          `json:"kind"`
	Name              string             `json:"name"`
	Phone             *string            `json:"phone,omitempty"`
	TaxId             *string            `json:"taxId,omitempty"`
}

// PartyKind defines model for PartyKind.
type PartyKind string

// Payment defines model for Payment.
type Payment struct {
	Amount       Money              `json:"amount"`
	CreatedAt    time.Time          `json:"createdAt"`
	Id           openapi_types.UUID `json:"id"`
	Method       PaymentMethod      `json:"method"`
	Notes        *string            `json:"notes,omitempty"`
	PaidAt       openapi_types.Date `json:"paidAt"`
	RunningTotal Money              `json:"runningTotal"`
}

// PaymentHistory defines model for PaymentHistory.
type PaymentHistory struct {
	Outstanding Money     `json:"outstanding"`
	Payments    []Payment `json:"payments"`
	TotalPaid   Money     `json:"totalPaid"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod = string

// Permissions defines model for Permissions.
type Permissions struct {
	Capabilities []string           `json:"capabilities"`
	Email        string             `json:"email"`
	Roles        []string           `json:"roles"`
	UserId       openapi_types.UUID `json:"userId"`
}

// Product defines model for Product.
type Product struct {
	Active            bool               `json:"active"`
	Brand             *string            `json:"brand,omitempty"`
	Category          *string            `json:"category,omitempty"`
	CostPrice         Money              `json:"costPrice"`
	DeactivatedAt     *time.Time         `json:"deactivatedAt,omitempty"`
	DeactivatedReason *string            `json:"deactivatedReason,omitempty"`
	Id                openapi_types.UUID `json:"id"`
	Name              string             `json:"name"`
	SalePrice         Money              `json:"salePrice"`
	Shortages         []Shortage         `json:"shortages"`
	Stock             Stock              `json:"stock"`
	WeightGrams       int                `json:"weightGrams"`
}

// PushSubscription defines model for PushSubscription.
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		Auth   string `json:"auth"`
		P256dh string `json:"p256dh"`
	} `json:"keys"`
}

// Shortage defines model for Shortage.
type Shortage struct {
	Counter string `json:"counter"`
	Level   int    `json:"level"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	ActorId    openapi_types.UUID `json:"actorId"`
	ChangedAt  time.Time          `json:"changedAt"`
	From       string             `json:"from"`
	OutOfOrder bool               `json:"outOfOrder"`
	To         OrderStatus        `json:"to"`
}

// StatusChangeRequest defines model for StatusChangeRequest.
type StatusChangeRequest struct {
	Status OrderStatus `json:"status"`
}

// StatusChangeResult defines model for StatusChangeResult.
type StatusChangeResult struct {
	Changed bool `json:"changed"`
}

// Stock defines model for Stock.
type Stock struct {
	Bottles int `json:"bottles"`
	Caps    int `json:"caps"`
	Labels  int `json:"labels"`
}

// ListAttachmentsParams defines parameters for ListAttachments.
type ListAttachmentsParams struct {
	EntityType EntityType         `form:"entityType" json:"entityType"`
	EntityId   openapi_types.UUID `form:"entityId" json:"entityId"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status     *OrderStatus        `form:"status,omitempty" json:"status,omitempty"`
	ClientId   *openapi_types.UUID `form:"clientId,omitempty" json:"clientId,omitempty"`
	SupplierId *openapi_types.UUID `form:"supplierId,omitempty" json:"supplierId,omitempty"`
	Limit      *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset     *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

// ExportOrdersParams defines parameters for ExportOrders.
type ExportOrdersParams struct {
	Status     *OrderStatus        `form:"status,omitempty" json:"status,omitempty"`
	ClientId   *openapi_types.UUID `form:"clientId,omitempty" json:"clientId,omitempty"`
	SupplierId *openapi_types.UUID `form:"supplierId,omitempty" json:"supplierId,omitempty"`
}

// ListPartiesParams defines parameters for ListParties.
type ListPartiesParams struct {
	Kind            *PartyKind `form:"kind,omitempty" json:"kind,omitempty"`
	IncludeArchived *bool      `form:"includeArchived,omitempty" json:"includeArchived,omitempty"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	IncludeInactive *bool `form:"includeInactive,omitempty" json:"includeInactive,omitempty"`
	LowStock        *bool `form:"lowStock,omitempty" json:"lowStock,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChangeRequest

// AddOrderLineItemJSONRequestBody defines body for AddOrderLineItem for application/json ContentType.
type AddOrderLineItemJSONRequestBody = LineItemInput

// RecordPaymentJSONRequestBody defines body for RecordPayment for application/json ContentType.
type RecordPaymentJSONRequestBody = NewPayment

// CreatePartyJSONRequestBody defines body for CreateParty for application/json ContentType.
type CreatePartyJSONRequestBody = NewParty

// ArchivePartyJSONRequestBody defines body for ArchiveParty for application/json ContentType.
type ArchivePartyJSONRequestBody = ArchiveRequest

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// AdjustProductStockJSONRequestBody defines body for AdjustProductStock for application/json ContentType.
type AdjustProductStockJSONRequestBody = Stock

// ArchiveProductJSONRequestBody defines body for ArchiveProduct for application/json ContentType.
type ArchiveProductJSONRequestBody = ArchiveRequest

// SavePushSubscriptionJSONRequestBody defines body for SavePushSubscription for application/json ContentType.
type SavePushSubscriptionJSONRequestBody = PushSubscription
