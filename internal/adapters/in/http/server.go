// Package http serves the JSON API described by api/openapi.yaml.
package http

import (
	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/generated/servers"
	"gestion/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Commands
	CreateOrder    commands.CreateOrderCommandHandler
	ChangeStatus   commands.ChangeOrderStatusCommandHandler
	AddLineItem    commands.AddOrderLineItemCommandHandler
	RemoveLineItem commands.RemoveOrderLineItemCommandHandler
	CommitFreight  commands.CommitFreightCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	RecordPayment  commands.RecordPaymentCommandHandler
	DeletePayment  commands.DeletePaymentCommandHandler
	CreateParty    commands.CreatePartyCommandHandler
	PartyLifecycle commands.PartyLifecycleCommandHandler
	Products       commands.ProductCommandHandler
	Attachments    commands.AttachmentCommandHandler
	Notifications  commands.NotificationCommandHandler

	// Queries
	GetOrderView      queries.GetOrderViewQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ExportOrders      queries.ExportOrdersQueryHandler
	GetFreight        queries.GetFreightQueryHandler
	ListOrderPayments queries.ListOrderPaymentsQueryHandler
	ListParties       queries.ListPartiesQueryHandler
	ListProducts      queries.ListProductsQueryHandler
	ListAttachments   queries.ListAttachmentsQueryHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Handlers return errors; ErrorHandler turns them into responses.
type Server struct {
	h    Handlers
	urls queries.URLResolver
}

func NewServer(handlers Handlers, urls queries.URLResolver) *Server {
	return &Server{h: handlers, urls: urls}
}

func toKernel(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := toKernel(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func parseMoney(field string, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return d, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// optional returns nil for the zero value so empty fields are omitted.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
