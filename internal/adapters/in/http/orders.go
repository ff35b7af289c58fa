package http

import (
	"errors"
	"fmt"
	"net/http"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	filter, err := orderFilter(params.Status, params.ClientId, params.SupplierId)
	if err != nil {
		return err
	}
	filter.Limit = deref(params.Limit)
	filter.Offset = deref(params.Offset)

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = orderSummaryDTO(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	clientID, err := toKernel(body.ClientId)
	if err != nil {
		return err
	}
	supplierID, err := toKernel(body.SupplierId)
	if err != nil {
		return err
	}
	items := make([]commands.LineItemInput, 0, len(deref(body.Items)))
	for _, in := range deref(body.Items) {
		item, err := lineItemInput(in)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, supplierID, deref(body.Notes), items)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// ExportOrders handles GET /api/v1/orders/export.
func (s *Server) ExportOrders(ctx echo.Context, params servers.ExportOrdersParams) error {
	filter, err := orderFilter(params.Status, params.ClientId, params.SupplierId)
	if err != nil {
		return err
	}
	query, err := queries.NewExportOrdersQuery(filter)
	if err != nil {
		return err
	}

	f, name, err := s.h.ExportOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return ctx.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetOrderViewQuery(orderId)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrderView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if view.State == queries.ViewNotFound {
		return ctx.JSON(http.StatusNotFound, servers.NotFound{State: servers.NotFoundStateNotFound})
	}
	return ctx.JSON(http.StatusOK, orderViewDTO(view))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernel(orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(PrincipalOf(ctx), id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(orderId)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeOrderStatusCommand(PrincipalOf(ctx), id, target)
	if err != nil {
		return err
	}

	changed, err := s.h.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.StatusChangeResult{Changed: changed})
}

// AddOrderLineItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderLineItem(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AddOrderLineItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(orderId)
	if err != nil {
		return err
	}
	item, err := lineItemInput(body)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddOrderLineItemCommand(id, item)
	if err != nil {
		return err
	}
	if err := s.h.AddLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: item.ItemID.Bytes()})
}

// RemoveOrderLineItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderLineItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	oid, err := toKernel(orderId)
	if err != nil {
		return err
	}
	iid, err := toKernel(itemId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveOrderLineItemCommand(oid, iid)
	if err != nil {
		return err
	}
	if err := s.h.RemoveLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderFreight handles GET /api/v1/orders/{orderId}/freight.
func (s *Server) GetOrderFreight(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetFreightQuery(orderId)
	if err != nil {
		return err
	}
	preview, err := s.h.GetFreight.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := freightDTO(preview.Freight)
	response.StoredWeightGrams = &preview.StoredGrams
	response.StoredCost = optional(preview.StoredCost.String())
	response.UpToDate = &preview.UpToDate
	return ctx.JSON(http.StatusOK, response)
}

// CommitOrderFreight handles POST /api/v1/orders/{orderId}/freight.
func (s *Server) CommitOrderFreight(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernel(orderId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCommitFreightCommand(id)
	if err != nil {
		return err
	}
	freight, err := s.h.CommitFreight.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := freightDTO(freight)
	upToDate := true
	response.UpToDate = &upToDate
	return ctx.JSON(http.StatusOK, response)
}

func orderFilter(status *string, clientID, supplierID *openapi_types.UUID) (queries.OrderFilter, error) {
	var filter queries.OrderFilter
	var statusErr, clientErr, supplierErr error
	if status != nil {
		parsed, err := order.ParseStatus(*status)
		statusErr = err
		filter.Status = &parsed
	}
	filter.ClientID, clientErr = toKernelPtr(clientID)
	filter.SupplierID, supplierErr = toKernelPtr(supplierID)
	return filter, errors.Join(statusErr, clientErr, supplierErr)
}

func lineItemInput(in servers.LineItemInput) (commands.LineItemInput, error) {
	productID, err := toKernel(in.ProductId)
	if err != nil {
		return commands.LineItemInput{}, err
	}
	price, priceErr := parseMoney("unit price", in.UnitPrice)
	cost, costErr := decimal.Zero, error(nil)
	if in.UnitCost != nil {
		cost, costErr = parseMoney("unit cost", *in.UnitCost)
	}
	if err := errors.Join(priceErr, costErr); err != nil {
		return commands.LineItemInput{}, err
	}
	return commands.LineItemInput{
		ItemID:    kernel.NewUUID(),
		ProductID: productID,
		Quantity:  in.Quantity,
		UnitPrice: price,
		UnitCost:  cost,
	}, nil
}
