package queries_test

import (
	"gestion/internal/adapters/out/postgres/orderrepo"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"

	"github.com/google/go-cmp/cmp"
)

var uuidComparer = cmp.Comparer(func(a, b kernel.UUID) bool { return a.IsEqual(b) })

func (s *QueriesTestSuite) Test_GetOrderView_ReturnsComposite() {
	// Arrange
	actor := kernel.NewUUID()
	change, err := order.NewStatusChange(s.order.ID(), order.New, order.RawMaterial, actor, false, day.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Require().NoError(orderrepo.NewGormOrderRepository(s.db, noopTracker{}).AppendStatusChange(s.T().Context(), change))

	query, err := queries.NewGetOrderViewQuery(s.order.ID().String())
	s.Require().NoError(err)

	// Act
	view, err := queries.NewGetOrderViewQueryHandler(s.db, stubURLs{}).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Equal(queries.ViewFound, view.State)
	s.Equal("PED-000001", view.Order.Number)
	s.Equal("Adega Central", view.Order.ClientName)
	s.Equal("Vidros do Norte", view.Order.SupplierName)
	s.True(dec("100").Equal(view.Order.Total))

	s.Require().Len(view.Items, 3)
	s.Equal("Garrafa 75cl", view.Items[0].ProductName)
	s.Equal("Caixa 6", view.Items[1].ProductName)
	s.Equal(5, view.Items[1].Quantity)
	s.True(dec("40").Equal(view.Items[1].Subtotal))

	s.True(dec("75").Equal(view.Payments.TotalPaid))
	s.True(dec("25").Equal(view.Payments.Outstanding))

	wantHistory := []queries.StatusChangeView{{
		From:      order.New,
		To:        order.RawMaterial,
		ActorID:   actor,
		ChangedAt: day.AddDate(0, 0, 1),
	}}
	s.Empty(cmp.Diff(wantHistory, view.History, uuidComparer))

	s.Require().Len(view.Attachments, 1)
	s.Equal(attachment.EntityOrder, view.Attachments[0].EntityType)
	s.Equal("https://files.chs.pt/anexos/"+s.attachment.Path(), view.Attachments[0].URL)
}

func (s *QueriesTestSuite) Test_GetOrderView_AcceptsIDObject() {
	// Arrange
	plain, err := queries.NewGetOrderViewQuery(s.order.ID().String())
	s.Require().NoError(err)
	object, err := queries.NewGetOrderViewQuery(map[string]any{"id": s.order.ID().String()})
	s.Require().NoError(err)
	handler := queries.NewGetOrderViewQueryHandler(s.db, stubURLs{})

	// Act
	fromPlain, err := handler.Handle(s.T().Context(), plain)
	s.Require().NoError(err)
	fromObject, err := handler.Handle(s.T().Context(), object)
	s.Require().NoError(err)

	// Assert
	s.Empty(cmp.Diff(fromPlain, fromObject, uuidComparer))
}

func (s *QueriesTestSuite) Test_GetOrderView_MissingOrderIsNotFoundState() {
	// Arrange
	query, err := queries.NewGetOrderViewQuery(kernel.NewUUID().String())
	s.Require().NoError(err)

	// Act
	view, err := queries.NewGetOrderViewQueryHandler(s.db, stubURLs{}).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Equal(queries.ViewNotFound, view.State)
	s.Empty(view.Items)
}

func (s *QueriesTestSuite) Test_GetOrderView_RejectsMalformedReference() {
	_, err := queries.NewGetOrderViewQuery("PED-000001")
	s.Require().Error(err)

	_, err = queries.NewGetOrderViewQueryHandler(s.db, stubURLs{}).Handle(s.T().Context(), queries.GetOrderViewQuery{})
	s.ErrorIs(err, queries.ErrGetOrderViewQueryIsNotConstructed)
}
