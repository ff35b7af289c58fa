package commands_test

import (
	"errors"
	"testing"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderFixture(t *testing.T) (commands.CreateOrderCommand, *party.Party, *party.Party, *product.Product) {
	t.Helper()
	client := newParty(t, party.Client, "Adega Central")
	supplier := newParty(t, party.Supplier, "Vidros do Norte")
	bottle := newProduct(t, "Garrafa 75cl", 450)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), client.ID(), supplier.ID(), "", []commands.LineItemInput{
		{ItemID: kernel.NewUUID(), ProductID: bottle.ID(), Quantity: 600, UnitPrice: dec("0.80"), UnitCost: dec("0.30")},
	})
	require.NoError(t, err)
	return cmd, client, supplier, bottle
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, client, supplier, bottle := createOrderFixture(t)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Parties.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		uow.Parties.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once(),
		uow.Products.On("GetMany", ctx, []kernel.UUID{bottle.ID()}).
			Return(map[kernel.UUID]*product.Product{bottle.ID(): bottle}, nil).Once(),
		uow.Orders.On("NextNumber", ctx).Return("PED-000042", nil).Once(),
		uow.Orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == cmd.OrderID() &&
				o.Number() == "PED-000042" &&
				o.Status() == order.New &&
				len(o.LineItems()) == 1 &&
				o.Total().Equal(dec("480"))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	uow := newMockUoW()
	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _, _, _ := createOrderFixture(t)

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	require.Error(t, h.Handle(ctx, cmd))
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_ArchivedClient(t *testing.T) {
	ctx := t.Context()
	cmd, client, _, _ := createOrderFixture(t)
	require.NoError(t, client.Archive("encerrou", testNow))

	uow := newMockUoW().expectRolledBack()
	uow.Parties.On("Get", ctx, client.ID()).Return(client, nil).Once()

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, party.ErrPartyIsArchived)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_SupplierUsedAsClient(t *testing.T) {
	ctx := t.Context()
	supplier := newParty(t, party.Supplier, "Vidros do Norte")
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), supplier.ID(), supplier.ID(), "", nil)
	require.NoError(t, err)

	uow := newMockUoW().expectRolledBack()
	uow.Parties.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once()

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd, client, supplier, bottle := createOrderFixture(t)

	uow := newMockUoW().expectRolledBack()
	uow.Parties.On("Get", ctx, client.ID()).Return(client, nil).Once()
	uow.Parties.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once()
	uow.Products.On("GetMany", ctx, []kernel.UUID{bottle.ID()}).
		Return(map[kernel.UUID]*product.Product{}, nil).Once()

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, client, supplier, bottle := createOrderFixture(t)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Parties.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		uow.Parties.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once(),
		uow.Products.On("GetMany", ctx, []kernel.UUID{bottle.ID()}).
			Return(map[kernel.UUID]*product.Product{bottle.ID(): bottle}, nil).Once(),
		uow.Orders.On("NextNumber", ctx).Return("PED-000043", nil).Once(),
		uow.Orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(MockFactory{uow})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.EqualError(t, err, "commit error")
	uow.assertAll(t)
}
