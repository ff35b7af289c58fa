package queries_test

import (
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/services"
	"gestion/internal/pkg/errs"
)

func (s *QueriesTestSuite) Test_GetFreight_PreviewsUncommittedFreight() {
	// Arrange
	query, err := queries.NewGetFreightQuery(s.order.ID().String())
	s.Require().NoError(err)

	// Act
	preview, err := queries.NewGetFreightQueryHandler(s.db, services.NewFreightCalculator()).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(1050), preview.Freight.WeightGrams())
	s.True(dec("6.1425").Equal(preview.Freight.Cost()))
	s.True(preview.Freight.Enabled())
	s.Zero(preview.StoredGrams)
	s.False(preview.UpToDate)
}

func (s *QueriesTestSuite) Test_GetFreight_DisabledWithoutItems() {
	// Arrange
	empty := s.newOrder(2, day)
	query, err := queries.NewGetFreightQuery(empty.ID().String())
	s.Require().NoError(err)

	// Act
	preview, err := queries.NewGetFreightQueryHandler(s.db, services.NewFreightCalculator()).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	s.False(preview.Freight.Enabled())
	s.True(preview.Freight.Cost().IsZero())
	s.True(preview.UpToDate)
}

func (s *QueriesTestSuite) Test_GetFreight_UnknownOrder() {
	query, err := queries.NewGetFreightQuery(kernel.NewUUID().String())
	s.Require().NoError(err)

	_, err = queries.NewGetFreightQueryHandler(s.db, services.NewFreightCalculator()).Handle(s.T().Context(), query)

	s.ErrorIs(err, errs.ErrObjectNotFound)
}
