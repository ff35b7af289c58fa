package commands

import (
	"context"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/core/domain/services"
)

type RecordPaymentCommandHandler struct {
	uowFactory UoWFactory
	composer   services.NotificationComposer
}

func NewRecordPaymentCommandHandler(uowFactory UoWFactory, composer services.NotificationComposer) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory, composer: composer}
}

// Handle inserts the payment and rewrites paid and outstanding from the full
// ledger while the order row is locked.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.PaymentRecord); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	at := now()
	p, err := payment.NewPayment(cmd.PaymentID(), o.ID(), cmd.Amount(), cmd.Method(), cmd.PaidAt(), cmd.Notes(), at)
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	if err := paymentRepo.Add(ctx, p); err != nil {
		return err
	}
	if err := reconcileLedger(ctx, paymentRepo, o, at); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if cmd.Notify() {
		parties := uow.PartyRepository()
		client, err := parties.Get(ctx, o.ClientID())
		if err != nil {
			return err
		}
		supplier, err := parties.Get(ctx, o.SupplierID())
		if err != nil {
			return err
		}
		msg, err := h.composer.PaymentRecorded(o, p, client.Name(), supplier.Name(), at)
		if err != nil {
			return err
		}
		if err := uow.OutboxRepository().Enqueue(ctx, msg); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
