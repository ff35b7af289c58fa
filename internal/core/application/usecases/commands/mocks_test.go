package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) AppendStatusChange(ctx context.Context, c *order.StatusChange) error {
	return m.Called(ctx, c).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	ps, _ := args.Get(0).([]*payment.Payment)
	return ps, args.Error(1)
}

func (m *MockPaymentRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) Add(ctx context.Context, p *party.Party) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartyRepository) Update(ctx context.Context, p *party.Party) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*party.Party)
	return p, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	args := m.Called(ctx, ids)
	ps, _ := args.Get(0).(map[kernel.UUID]*product.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]*product.Product)
	return ps, args.Error(1)
}

type MockAttachmentRepository struct{ mock.Mock }

func (m *MockAttachmentRepository) Add(ctx context.Context, a *attachment.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAttachmentRepository) Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*attachment.Attachment)
	return a, args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAttachmentRepository) ListByEntity(
	ctx context.Context, t attachment.EntityType, id kernel.UUID,
) ([]*attachment.Attachment, error) {
	args := m.Called(ctx, t, id)
	as, _ := args.Get(0).([]*attachment.Attachment)
	return as, args.Error(1)
}

func (m *MockAttachmentRepository) DeleteByEntity(ctx context.Context, t attachment.EntityType, id kernel.UUID) ([]string, error) {
	args := m.Called(ctx, t, id)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Enqueue(ctx context.Context, msg *notification.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]*notification.Message, error) {
	args := m.Called(ctx, limit)
	ms, _ := args.Get(0).([]*notification.Message)
	return ms, args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *notification.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockPushSubscriptionRepository struct{ mock.Mock }

func (m *MockPushSubscriptionRepository) Save(ctx context.Context, s *notification.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockPushSubscriptionRepository) List(ctx context.Context, userID *kernel.UUID) ([]*notification.Subscription, error) {
	args := m.Called(ctx, userID)
	ss, _ := args.Get(0).([]*notification.Subscription)
	return ss, args.Error(1)
}

func (m *MockPushSubscriptionRepository) Delete(ctx context.Context, endpoint string) error {
	return m.Called(ctx, endpoint).Error(0)
}

// MockUoW mocks the transaction calls and hands out fixed repository mocks.
type MockUoW struct {
	mock.Mock

	Orders        *MockOrderRepository
	Payments      *MockPaymentRepository
	Parties       *MockPartyRepository
	Products      *MockProductRepository
	Attachments   *MockAttachmentRepository
	Outbox        *MockOutboxRepository
	Subscriptions *MockPushSubscriptionRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Orders:        new(MockOrderRepository),
		Payments:      new(MockPaymentRepository),
		Parties:       new(MockPartyRepository),
		Products:      new(MockProductRepository),
		Attachments:   new(MockAttachmentRepository),
		Outbox:        new(MockOutboxRepository),
		Subscriptions: new(MockPushSubscriptionRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository           { return m.Orders }
func (m *MockUoW) PaymentRepository() ports.PaymentRepository       { return m.Payments }
func (m *MockUoW) PartyRepository() ports.PartyRepository           { return m.Parties }
func (m *MockUoW) ProductRepository() ports.ProductRepository       { return m.Products }
func (m *MockUoW) AttachmentRepository() ports.AttachmentRepository { return m.Attachments }
func (m *MockUoW) OutboxRepository() ports.OutboxRepository         { return m.Outbox }
func (m *MockUoW) PushSubscriptionRepository() ports.PushSubscriptionRepository {
	return m.Subscriptions
}

// expectCommitted expects Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectCommitted() *MockUoW {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Commit", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Maybe()
	return m
}

// expectRolledBack expects Begin and Rollback and fails on Commit.
func (m *MockUoW) expectRolledBack() *MockUoW {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
	return m
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.Orders.AssertExpectations(t)
	m.Payments.AssertExpectations(t)
	m.Parties.AssertExpectations(t)
	m.Products.AssertExpectations(t)
	m.Attachments.AssertExpectations(t)
	m.Outbox.AssertExpectations(t)
	m.Subscriptions.AssertExpectations(t)
}

// MockFactory creates the same MockUoW for every Create call and satisfies
// every factory interface of the package.
type MockFactory struct{ uow *MockUoW }

func (f MockFactory) Create() commands.UoW { return f.uow }

type MockPartyFactory struct{ uow *MockUoW }

func (f MockPartyFactory) Create() commands.PartyUoW { return f.uow }

type MockProductFactory struct{ uow *MockUoW }

func (f MockProductFactory) Create() commands.ProductUoW { return f.uow }

type MockNotificationFactory struct{ uow *MockUoW }

func (f MockNotificationFactory) Create() commands.NotificationUoW { return f.uow }

type MockBlobStorage struct{ mock.Mock }

func (m *MockBlobStorage) Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, path, r, size, contentType).Error(0)
}

func (m *MockBlobStorage) Remove(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockBlobStorage) URL(path string) string {
	return "https://files.test/anexos/" + path
}

type MockMailer struct {
	mock.Mock
	enabled bool
}

func (m *MockMailer) Enabled() bool { return m.enabled }

func (m *MockMailer) Send(ctx context.Context, subject, htmlBody string) error {
	return m.Called(ctx, subject, htmlBody).Error(0)
}

type MockPusher struct {
	mock.Mock
	enabled bool
}

func (m *MockPusher) Enabled() bool { return m.enabled }

func (m *MockPusher) Push(ctx context.Context, s *notification.Subscription, p notification.Push) error {
	return m.Called(ctx, s, p).Error(0)
}

// fixtures

var testNow = time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func principal(t *testing.T, roles ...access.Role) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), "ana@chs.pt", roles)
	require.NoError(t, err)
	return p
}

func newParty(t *testing.T, kind party.Kind, name string) *party.Party {
	t.Helper()
	p, err := party.NewParty(kernel.NewUUID(), kind, name, party.Contact{}, testNow)
	require.NoError(t, err)
	return p
}

func newProduct(t *testing.T, name string, weightGrams int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:        name,
		CostPrice:   dec("0.30"),
		SalePrice:   dec("0.80"),
		WeightGrams: weightGrams,
	}, product.Stock{Bottles: 500, Caps: 500, Labels: 500})
	require.NoError(t, err)
	return p
}

// newOrder builds an order with one line per product, quantity qty at price 1.00.
func newOrder(t *testing.T, qty int, products ...*product.Product) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.FormatNumber(7), kernel.NewUUID(), kernel.NewUUID(), "", testNow)
	require.NoError(t, err)
	for _, p := range products {
		item, err := order.NewLineItem(kernel.NewUUID(), p.ID(), qty, dec("1.00"), dec("0.50"))
		require.NoError(t, err)
		require.NoError(t, o.AddLineItem(item, testNow))
	}
	return o
}

func newPayment(t *testing.T, orderID kernel.UUID, amount string) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, dec(amount), payment.Cash, testNow, "", testNow)
	require.NoError(t, err)
	return p
}
