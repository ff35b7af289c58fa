package queries_test

import (
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/pkg/errs"
)

func (s *QueriesTestSuite) Test_ListOrderPayments_RunningTotals() {
	// Arrange
	query, err := queries.NewListOrderPaymentsQuery(s.order.ID().String())
	s.Require().NoError(err)

	// Act
	history, err := queries.NewListOrderPaymentsQueryHandler(s.db).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(history.Payments, 2)

	newest, oldest := history.Payments[0], history.Payments[1]
	s.Equal(payment.MBWay, newest.Method)
	s.True(dec("35").Equal(newest.Amount))
	s.True(dec("75").Equal(newest.RunningTotal))
	s.Equal(payment.Transfer, oldest.Method)
	s.True(dec("40").Equal(oldest.RunningTotal))

	s.True(dec("75").Equal(history.TotalPaid))
	s.True(dec("25").Equal(history.Outstanding))
}

func (s *QueriesTestSuite) Test_ListOrderPayments_EmptyLedger() {
	// Arrange
	other := s.newOrder(2, day, line{s.products[0], 1, "3.50"})
	query, err := queries.NewListOrderPaymentsQuery(map[string]any{"id": other.ID().String()})
	s.Require().NoError(err)

	// Act
	history, err := queries.NewListOrderPaymentsQueryHandler(s.db).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Empty(history.Payments)
	s.True(history.TotalPaid.IsZero())
	s.True(dec("3.5").Equal(history.Outstanding))
}

func (s *QueriesTestSuite) Test_ListOrderPayments_UnknownOrder() {
	query, err := queries.NewListOrderPaymentsQuery(kernel.NewUUID().String())
	s.Require().NoError(err)

	_, err = queries.NewListOrderPaymentsQueryHandler(s.db).Handle(s.T().Context(), query)

	s.ErrorIs(err, errs.ErrObjectNotFound)
}
