package commands_test

import (
	"testing"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/core/domain/services"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecordPaymentHandler(uow *MockUoW) *commands.RecordPaymentCommandHandler {
	h := commands.NewRecordPaymentCommandHandler(MockFactory{uow}, services.NewNotificationComposer("https://gestao.chs.pt"))
	return &h
}

func TestNewRecordPaymentCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		method payment.Method
		want   error
	}{
		{name: "zero amount", amount: "0", method: payment.Cash, want: errs.ErrValueIsInvalid},
		{name: "negative amount", amount: "-5", method: payment.Cash, want: errs.ErrValueIsInvalid},
		{name: "fraction of a cent", amount: "10.00005", method: payment.Cash, want: errs.ErrValueIsInvalid},
		{name: "below the smallest cent", amount: "0.00004", method: payment.Cash, want: errs.ErrValueIsInvalid},
		{name: "missing method", amount: "5", method: "", want: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRecordPaymentCommand(
				principal(t, access.Finance), kernel.NewUUID(), kernel.NewUUID(),
				dec(tt.amount), tt.method, testNow, "", false,
			)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRecordPaymentCommandHandler_Handle_ReconcilesFromLedger(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, 30, newProduct(t, "Garrafa", 450))
	earlier := newPayment(t, o.ID(), "5")
	cmd, err := commands.NewRecordPaymentCommand(
		principal(t, access.Finance), kernel.NewUUID(), o.ID(), dec("12"), payment.Transfer, testNow, "", false,
	)
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.Payments.On("Add", ctx, mock.MatchedBy(func(p *payment.Payment) bool {
			return p.ID() == cmd.PaymentID() && p.Amount().Equal(dec("12"))
		})).Return(nil).Once(),
		uow.Payments.On("ListByOrder", ctx, o.ID()).
			Return([]*payment.Payment{earlier, newPayment(t, o.ID(), "12")}, nil).Once(),
		uow.Orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Paid().Equal(dec("17")) && o.Outstanding().Equal(dec("13"))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	require.NoError(t, newRecordPaymentHandler(uow).Handle(ctx, cmd))
	uow.assertAll(t)
}

func TestRecordPaymentCommandHandler_Handle_Notify(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, 30, newProduct(t, "Garrafa", 450))
	client := newParty(t, party.Client, "Adega Central")
	supplier := newParty(t, party.Supplier, "Vidros do Norte")
	cmd, err := commands.NewRecordPaymentCommand(
		principal(t, access.Admin), kernel.NewUUID(), o.ID(), dec("30"), payment.MBWay, testNow, "", true,
	)
	require.NoError(t, err)

	uow := newMockUoW().expectCommitted()
	uow.Orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.Payments.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()
	uow.Payments.On("ListByOrder", ctx, o.ID()).Return([]*payment.Payment{newPayment(t, o.ID(), "30")}, nil).Once()
	uow.Orders.On("Update", ctx, o).Return(nil).Once()
	uow.Parties.On("Get", ctx, o.ClientID()).Return(client, nil).Once()
	uow.Parties.On("Get", ctx, o.SupplierID()).Return(supplier, nil).Once()
	uow.Outbox.On("Enqueue", ctx, mock.MatchedBy(func(m *notification.Message) bool {
		return m.Kind() == notification.PaymentRecorded &&
			assert.Contains(t, m.Subject(), "Adega Central") &&
			assert.Contains(t, m.HTMLBody(), "Vidros do Norte")
	})).Return(nil).Once()

	require.NoError(t, newRecordPaymentHandler(uow).Handle(ctx, cmd))
	assert.True(t, o.Outstanding().IsZero())
	uow.assertAll(t)
}

func TestRecordPaymentCommandHandler_Handle_AccessDenied(t *testing.T) {
	cmd, err := commands.NewRecordPaymentCommand(
		principal(t, access.Ops), kernel.NewUUID(), kernel.NewUUID(), dec("10"), payment.Cash, testNow, "", false,
	)
	require.NoError(t, err)

	uow := newMockUoW()
	err = newRecordPaymentHandler(uow).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.assertAll(t)
}

func TestRecordPaymentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		principal(t, access.Finance), kernel.NewUUID(), orderID, dec("10"), payment.Cash, testNow, "", false,
	)
	require.NoError(t, err)

	uow := newMockUoW().expectRolledBack()
	uow.Orders.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	err = newRecordPaymentHandler(uow).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestDeletePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, 30, newProduct(t, "Garrafa", 450))
	require.NoError(t, o.ReconcilePaid(dec("30"), testNow))
	p := newPayment(t, o.ID(), "30")
	cmd, err := commands.NewDeletePaymentCommand(principal(t, access.Finance), p.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Payments.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.Orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.Payments.On("Delete", ctx, p.ID()).Return(nil).Once(),
		uow.Payments.On("ListByOrder", ctx, o.ID()).Return([]*payment.Payment{}, nil).Once(),
		uow.Orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Paid().IsZero() && o.Outstanding().Equal(dec("30"))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeletePaymentCommandHandler(MockFactory{uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertAll(t)
}

func TestDeletePaymentCommandHandler_Handle_AccessDenied(t *testing.T) {
	cmd, err := commands.NewDeletePaymentCommand(principal(t, access.Collaborator), kernel.NewUUID())
	require.NoError(t, err)

	uow := newMockUoW()
	h := commands.NewDeletePaymentCommandHandler(MockFactory{uow})
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrAccessDenied)
	uow.assertAll(t)
}
