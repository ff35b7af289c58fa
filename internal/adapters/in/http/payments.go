package http

import (
	"net/http"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrderPayments handles GET /api/v1/orders/{orderId}/payments.
func (s *Server) ListOrderPayments(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewListOrderPaymentsQuery(orderId)
	if err != nil {
		return err
	}
	history, err := s.h.ListOrderPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, paymentHistoryDTO(history))
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RecordPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(orderId)
	if err != nil {
		return err
	}
	amount, err := parseMoney("amount", body.Amount)
	if err != nil {
		return err
	}
	method, err := payment.ParseMethod(body.Method)
	if err != nil {
		return err
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		PrincipalOf(ctx), paymentID, id, amount, method, body.PaidAt.Time, deref(body.Notes), deref(body.Notify),
	)
	if err != nil {
		return err
	}
	if err := s.h.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: paymentID.Bytes()})
}

// DeletePayment handles DELETE /api/v1/payments/{paymentId}.
func (s *Server) DeletePayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	id, err := toKernel(paymentId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeletePaymentCommand(PrincipalOf(ctx), id)
	if err != nil {
		return err
	}
	if err := s.h.DeletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
