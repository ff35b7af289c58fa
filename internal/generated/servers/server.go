package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Resolved capabilities of the session
	// (GET /api/v1/me/permissions)
	GetMyPermissions(ctx echo.Context) error

	// List orders
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// Create an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// Export orders as xlsx
	// (GET /api/v1/orders/export)
	ExportOrders(ctx echo.Context, params ExportOrdersParams) error

	// Delete an order
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Get the order view
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Preview the freight of an order
	// (GET /api/v1/orders/{orderId}/freight)
	GetOrderFreight(ctx echo.Context, orderId openapi_types.UUID) error

	// Store the freight of an order
	// (POST /api/v1/orders/{orderId}/freight)
	CommitOrderFreight(ctx echo.Context, orderId openapi_types.UUID) error

	// Add a line item
	// (POST /api/v1/orders/{orderId}/items)
	AddOrderLineItem(ctx echo.Context, orderId openapi_types.UUID) error

	// Remove a line item
	// (DELETE /api/v1/orders/{orderId}/items/{itemId})
	RemoveOrderLineItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error

	// List the payments of an order
	// (GET /api/v1/orders/{orderId}/payments)
	ListOrderPayments(ctx echo.Context, orderId openapi_types.UUID) error

	// Record a payment
	// (POST /api/v1/orders/{orderId}/payments)
	RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error

	// Change the status of an order
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// Delete a payment
	// (DELETE /api/v1/payments/{paymentId})
	DeletePayment(ctx echo.Context, paymentId openapi_types.UUID) error

	// List clients or suppliers
	// (GET /api/v1/parties)
	ListParties(ctx echo.Context, params ListPartiesParams) error

	// Create a client or supplier
	// (POST /api/v1/parties)
	CreateParty(ctx echo.Context) error

	// Archive a party
	// (POST /api/v1/parties/{partyId}/archive)
	ArchiveParty(ctx echo.Context, partyId openapi_types.UUID) error

	// Reactivate a party
	// (POST /api/v1/parties/{partyId}/reactivate)
	ReactivateParty(ctx echo.Context, partyId openapi_types.UUID) error

	// List products
	// (GET /api/v1/products)
	ListProducts(ctx echo.Context, params ListProductsParams) error

	// Create a product
	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error

	// Replace the stock counters of a product
	// (PUT /api/v1/products/{productId}/stock)
	AdjustProductStock(ctx echo.Context, productId openapi_types.UUID) error

	// Archive a product
	// (POST /api/v1/products/{productId}/archive)
	ArchiveProduct(ctx echo.Context, productId openapi_types.UUID) error

	// Reactivate a product
	// (POST /api/v1/products/{productId}/reactivate)
	ReactivateProduct(ctx echo.Context, productId openapi_types.UUID) error

	// List attachments of an entity
	// (GET /api/v1/attachments)
	ListAttachments(ctx echo.Context, params ListAttachmentsParams) error

	// Upload an attachment
	// (POST /api/v1/attachments)
	UploadAttachment(ctx echo.Context) error

	// Delete an attachment
	// (DELETE /api/v1/attachments/{attachmentId})
	DeleteAttachment(ctx echo.Context, attachmentId openapi_types.UUID) error

	// Store a push subscription
	// (POST /api/v1/push-subscriptions)
	SavePushSubscription(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetMyPermissions converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyPermissions(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMyPermissions(ctx)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "clientId" -------------

	err = runtime.BindQueryParameter("form", true, false, "clientId", ctx.QueryParams(), &params.ClientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	// ------------- Optional query parameter "supplierId" -------------

	err = runtime.BindQueryParameter("form", true, false, "supplierId", ctx.QueryParams(), &params.SupplierId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter supplierId: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// ExportOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrders(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ExportOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "clientId" -------------

	err = runtime.BindQueryParameter("form", true, false, "clientId", ctx.QueryParams(), &params.ClientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	// ------------- Optional query parameter "supplierId" -------------

	err = runtime.BindQueryParameter("form", true, false, "supplierId", ctx.QueryParams(), &params.SupplierId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter supplierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ExportOrders(ctx, params)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// GetOrderFreight converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderFreight(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderFreight(ctx, orderId)
	return err
}

// CommitOrderFreight converts echo context to params.
func (w *ServerInterfaceWrapper) CommitOrderFreight(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CommitOrderFreight(ctx, orderId)
	return err
}

// AddOrderLineItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddOrderLineItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddOrderLineItem(ctx, orderId)
	return err
}

// RemoveOrderLineItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveOrderLineItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveOrderLineItem(ctx, orderId, itemId)
	return err
}

// ListOrderPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderPayments(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrderPayments(ctx, orderId)
	return err
}

// RecordPayment converts echo context to params.
func (w *ServerInterfaceWrapper) RecordPayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecordPayment(ctx, orderId)
	return err
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeOrderStatus(ctx, orderId)
	return err
}

// DeletePayment converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "paymentId" -------------
	var paymentId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "paymentId", ctx.Param("paymentId"), &paymentId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter paymentId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeletePayment(ctx, paymentId)
	return err
}

// ListParties converts echo context to params.
func (w *ServerInterfaceWrapper) ListParties(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListPartiesParams
	// ------------- Optional query parameter "kind" -------------

	err = runtime.BindQueryParameter("form", true, false, "kind", ctx.QueryParams(), &params.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter kind: %s", err))
	}

	// ------------- Optional query parameter "includeArchived" -------------

	err = runtime.BindQueryParameter("form", true, false, "includeArchived", ctx.QueryParams(), &params.IncludeArchived)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter includeArchived: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListParties(ctx, params)
	return err
}

// CreateParty converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParty(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateParty(ctx)
	return err
}

// ArchiveParty converts echo context to params.
func (w *ServerInterfaceWrapper) ArchiveParty(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "partyId" -------------
	var partyId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "partyId", ctx.Param("partyId"), &partyId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter partyId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ArchiveParty(ctx, partyId)
	return err
}

// ReactivateParty converts echo context to params.
func (w *ServerInterfaceWrapper) ReactivateParty(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "partyId" -------------
	var partyId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "partyId", ctx.Param("partyId"), &partyId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter partyId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReactivateParty(ctx, partyId)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductsParams
	// ------------- Optional query parameter "includeInactive" -------------

	err = runtime.BindQueryParameter("form", true, false, "includeInactive", ctx.QueryParams(), &params.IncludeInactive)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter includeInactive: %s", err))
	}

	// ------------- Optional query parameter "lowStock" -------------

	err = runtime.BindQueryParameter("form", true, false, "lowStock", ctx.QueryParams(), &params.LowStock)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lowStock: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx, params)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProduct(ctx)
	return err
}

// AdjustProductStock converts echo context to params.
func (w *ServerInterfaceWrapper) AdjustProductStock(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdjustProductStock(ctx, productId)
	return err
}

// ArchiveProduct converts echo context to params.
func (w *ServerInterfaceWrapper) ArchiveProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ArchiveProduct(ctx, productId)
	return err
}

// ReactivateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) ReactivateProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReactivateProduct(ctx, productId)
	return err
}

// ListAttachments converts echo context to params.
func (w *ServerInterfaceWrapper) ListAttachments(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAttachmentsParams
	// ------------- Required query parameter "entityType" -------------

	err = runtime.BindQueryParameter("form", true, true, "entityType", ctx.QueryParams(), &params.EntityType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityType: %s", err))
	}

	// ------------- Required query parameter "entityId" -------------

	err = runtime.BindQueryParameter("form", true, true, "entityId", ctx.QueryParams(), &params.EntityId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAttachments(ctx, params)
	return err
}

// UploadAttachment converts echo context to params.
func (w *ServerInterfaceWrapper) UploadAttachment(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UploadAttachment(ctx)
	return err
}

// DeleteAttachment converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteAttachment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "attachmentId" -------------
	var attachmentId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "attachmentId", ctx.Param("attachmentId"), &attachmentId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter attachmentId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteAttachment(ctx, attachmentId)
	return err
}

// SavePushSubscription converts echo context to params.
func (w *ServerInterfaceWrapper) SavePushSubscription(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SavePushSubscription(ctx)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/me/permissions", wrapper.GetMyPermissions)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/export", wrapper.ExportOrders)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/freight", wrapper.GetOrderFreight)
	router.POST(baseURL+"/api/v1/orders/:orderId/freight", wrapper.CommitOrderFreight)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", wrapper.AddOrderLineItem)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/items/:itemId", wrapper.RemoveOrderLineItem)
	router.GET(baseURL+"/api/v1/orders/:orderId/payments", wrapper.ListOrderPayments)
	router.POST(baseURL+"/api/v1/orders/:orderId/payments", wrapper.RecordPayment)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.DELETE(baseURL+"/api/v1/payments/:paymentId", wrapper.DeletePayment)
	router.GET(baseURL+"/api/v1/parties", wrapper.ListParties)
	router.POST(baseURL+"/api/v1/parties", wrapper.CreateParty)
	router.POST(baseURL+"/api/v1/parties/:partyId/archive", wrapper.ArchiveParty)
	router.POST(baseURL+"/api/v1/parties/:partyId/reactivate", wrapper.ReactivateParty)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.PUT(baseURL+"/api/v1/products/:productId/stock", wrapper.AdjustProductStock)
	router.POST(baseURL+"/api/v1/products/:productId/archive", wrapper.ArchiveProduct)
	router.POST(baseURL+"/api/v1/products/:productId/reactivate", wrapper.ReactivateProduct)
	router.GET(baseURL+"/api/v1/attachments", wrapper.ListAttachments)
	router.POST(baseURL+"/api/v1/attachments", wrapper.UploadAttachment)
	router.DELETE(baseURL+"/api/v1/attachments/:attachmentId", wrapper.DeleteAttachment)
	router.POST(baseURL+"/api/v1/push-subscriptions", wrapper.SavePushSubscription)
}
