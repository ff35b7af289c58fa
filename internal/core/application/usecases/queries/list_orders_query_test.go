package queries_test

import (
	"gestion/internal/adapters/out/postgres/partyrepo"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/pkg/errs"
)

func (s *QueriesTestSuite) Test_ListOrders_NewestFirst() {
	// Arrange
	newer := s.newOrder(2, day.AddDate(0, 0, 1), line{s.products[0], 1, "1.00"})
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{})
	s.Require().NoError(err)

	// Act
	summaries, err := queries.NewListOrdersQueryHandler(s.db).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.True(newer.ID().IsEqual(summaries[0].ID))
	s.Equal("PED-000001", summaries[1].Number)
	s.Equal("Adega Central", summaries[1].ClientName)
}

func (s *QueriesTestSuite) Test_ListOrders_Filters() {
	// Arrange
	stranger := s.newParty(party.Client, "Quinta da Serra", day)
	s.Require().NoError(partyrepo.NewGormPartyRepository(s.db).Add(s.T().Context(), stranger))
	s.Require().NoError(s.db.Exec(
		"UPDATE orders SET status = ?, client_id = ? WHERE id = ?",
		int(order.Production), stranger.ID().Bytes(), s.order.ID().Bytes(),
	).Error)
	s.newOrder(2, day.AddDate(0, 0, 1), line{s.products[0], 1, "1.00"})
	status := order.Production
	clientID := stranger.ID()

	tests := map[string]struct {
		filter queries.OrderFilter
		want   []string
	}{
		"by status": {filter: queries.OrderFilter{Status: &status}, want: []string{"PED-000001"}},
		"by client": {filter: queries.OrderFilter{ClientID: &clientID}, want: []string{"PED-000001"}},
		"paged":     {filter: queries.OrderFilter{Limit: 1, Offset: 1}, want: []string{"PED-000001"}},
		"all":       {filter: queries.OrderFilter{}, want: []string{"PED-000002", "PED-000001"}},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			query, err := queries.NewListOrdersQuery(tt.filter)
			s.Require().NoError(err)

			summaries, err := queries.NewListOrdersQueryHandler(s.db).Handle(s.T().Context(), query)

			s.Require().NoError(err)
			numbers := make([]string, 0, len(summaries))
			for _, o := range summaries {
				numbers = append(numbers, o.Number)
			}
			s.Equal(tt.want, numbers)
		})
	}
}

func (s *QueriesTestSuite) Test_ListOrders_RejectsBadPaging() {
	_, err := queries.NewListOrdersQuery(queries.OrderFilter{Limit: queries.MaxListLimit + 1})
	s.ErrorIs(err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListOrdersQuery(queries.OrderFilter{Offset: -1})
	s.Error(err)
}
