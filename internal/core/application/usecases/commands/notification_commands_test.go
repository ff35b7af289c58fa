package commands_test

import (
	"errors"
	"fmt"
	"testing"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newMessage(t *testing.T, subject string) *notification.Message {
	t.Helper()
	m, err := notification.NewMessage(
		kernel.NewUUID(), notification.OrderStatusChanged, subject, "<p>"+subject+"</p>",
		notification.Push{Title: subject, Body: subject, URL: "https://gestao.chs.pt/orders/1"}, nil, testNow,
	)
	require.NoError(t, err)
	return m
}

func newSubscription(t *testing.T, n int) *notification.Subscription {
	t.Helper()
	s, err := notification.NewSubscription(
		fmt.Sprintf("https://push.example.com/send/%d", n), "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM", "tBHItJI5svbpez7KI4CCXg",
		kernel.NewUUID(), testNow,
	)
	require.NoError(t, err)
	return s
}

// recordStates captures the state of every message passed to Update.
func recordStates(outbox *MockOutboxRepository) *[]notification.State {
	states := make([]notification.State, 0)
	outbox.On("Update", mock.Anything, mock.AnythingOfType("*notification.Message")).
		Run(func(args mock.Arguments) {
			states = append(states, args.Get(1).(*notification.Message).State())
		}).Return(nil)
	return &states
}

func TestNewSavePushSubscriptionCommand_Anonymous(t *testing.T) {
	_, err := commands.NewSavePushSubscriptionCommand(access.Principal{}, "https://push.example.com/x", "k", "a")
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestNotificationCommandHandler_SaveSubscription(t *testing.T) {
	ctx := t.Context()
	p := principal(t, access.Viewer)
	cmd, err := commands.NewSavePushSubscriptionCommand(p, "https://push.example.com/x", "key", "auth")
	require.NoError(t, err)

	uow := newMockUoW().expectCommitted()
	uow.Subscriptions.On("Save", ctx, mock.MatchedBy(func(s *notification.Subscription) bool {
		return s.UserID() == p.UserID() && s.Endpoint() == "https://push.example.com/x"
	})).Return(nil).Once()

	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, &MockMailer{}, &MockPusher{}, zap.NewNop())
	require.NoError(t, h.SaveSubscription(ctx, cmd))
	uow.assertAll(t)
}

func TestNotificationCommandHandler_Dispatch_Sent(t *testing.T) {
	ctx := t.Context()
	m := newMessage(t, "Pedido PED-000007: PRODUÇÃO")
	sub := newSubscription(t, 1)

	uow := newMockUoW().expectCommitted()
	uow.Outbox.On("ClaimPending", ctx, commands.DefaultDispatchBatchSize).Return([]*notification.Message{m}, nil).Once()
	states := recordStates(uow.Outbox)
	uow.Subscriptions.On("List", ctx, (*kernel.UUID)(nil)).Return([]*notification.Subscription{sub}, nil).Once()

	mailer := &MockMailer{enabled: true}
	mailer.On("Send", ctx, m.Subject(), m.HTMLBody()).Return(nil).Once()
	pusher := &MockPusher{enabled: true}
	pusher.On("Push", ctx, sub, m.Push()).Return(nil).Once()

	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, mailer, pusher, zap.NewNop())
	n, err := h.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []notification.State{notification.Dispatching, notification.Sent}, *states)
	assert.Equal(t, 1, m.Attempts())
	assert.NotNil(t, m.DispatchedAt())
	uow.assertAll(t)
	mailer.AssertExpectations(t)
	pusher.AssertExpectations(t)
}

func TestNotificationCommandHandler_Dispatch_MailFailureMarksFailed(t *testing.T) {
	ctx := t.Context()
	m := newMessage(t, "Pedido PED-000008: ENTREGUE")

	uow := newMockUoW().expectCommitted()
	uow.Outbox.On("ClaimPending", ctx, commands.DefaultDispatchBatchSize).Return([]*notification.Message{m}, nil).Once()
	states := recordStates(uow.Outbox)

	mailer := &MockMailer{enabled: true}
	mailer.On("Send", ctx, m.Subject(), m.HTMLBody()).Return(errors.New("535 authentication failed")).Once()

	core, logs := observer.New(zapcore.ErrorLevel)
	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, mailer, &MockPusher{}, zap.New(core))
	n, err := h.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []notification.State{notification.Dispatching, notification.Failed}, *states)
	assert.Contains(t, m.LastError(), "535 authentication failed")
	assert.Equal(t, 1, logs.FilterMessage("notification delivery failed").Len())
	uow.assertAll(t)
	mailer.AssertExpectations(t)
}

func TestNotificationCommandHandler_Dispatch_PrunesGoneSubscriptions(t *testing.T) {
	ctx := t.Context()
	m := newMessage(t, "Stock baixo")
	gone, live := newSubscription(t, 1), newSubscription(t, 2)

	uow := newMockUoW().expectCommitted()
	uow.Outbox.On("ClaimPending", ctx, commands.DefaultDispatchBatchSize).Return([]*notification.Message{m}, nil).Once()
	states := recordStates(uow.Outbox)
	uow.Subscriptions.On("List", ctx, (*kernel.UUID)(nil)).Return([]*notification.Subscription{gone, live}, nil).Once()
	uow.Subscriptions.On("Delete", ctx, gone.Endpoint()).Return(nil).Once()

	pusher := &MockPusher{enabled: true}
	pusher.On("Push", ctx, gone, m.Push()).Return(fmt.Errorf("status 410: %w", ports.ErrSubscriptionGone)).Once()
	pusher.On("Push", ctx, live, m.Push()).Return(nil).Once()

	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, &MockMailer{}, pusher, zap.NewNop())
	_, err := h.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, []notification.State{notification.Dispatching, notification.Sent}, *states)
	uow.assertAll(t)
	pusher.AssertExpectations(t)
}

func TestNotificationCommandHandler_Dispatch_NothingPending(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW().expectCommitted()
	uow.Outbox.On("ClaimPending", ctx, commands.DefaultDispatchBatchSize).Return([]*notification.Message{}, nil).Once()

	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, &MockMailer{enabled: true}, &MockPusher{}, zap.NewNop())
	n, err := h.Dispatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	uow.assertAll(t)
}

func TestNotificationCommandHandler_Dispatch_ClaimError(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW().expectRolledBack()
	uow.Outbox.On("ClaimPending", ctx, commands.DefaultDispatchBatchSize).Return(nil, errors.New("db down")).Once()

	h := commands.NewNotificationCommandHandler(MockNotificationFactory{uow}, &MockMailer{}, &MockPusher{}, zap.NewNop())
	_, err := h.Dispatch(ctx)
	require.EqualError(t, err, "db down")
	uow.assertAll(t)
}
