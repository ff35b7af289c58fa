package queries_test

import (
	"gestion/internal/adapters/out/postgres/partyrepo"
	"gestion/internal/adapters/out/postgres/productrepo"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/product"
)

func (s *QueriesTestSuite) Test_ListParties_HidesArchived() {
	// Arrange
	archived := s.newParty(party.Client, "Adega Antiga", day)
	s.Require().NoError(archived.Archive("encerrada", day))
	s.Require().NoError(partyrepo.NewGormPartyRepository(s.db).Add(s.T().Context(), archived))

	active, err := queries.NewListPartiesQuery(party.Client, false)
	s.Require().NoError(err)
	all, err := queries.NewListPartiesQuery(party.Client, true)
	s.Require().NoError(err)
	handler := queries.NewListPartiesQueryHandler(s.db)

	// Act
	activeViews, err := handler.Handle(s.T().Context(), active)
	s.Require().NoError(err)
	allViews, err := handler.Handle(s.T().Context(), all)
	s.Require().NoError(err)

	// Assert
	s.Require().Len(activeViews, 1)
	s.Equal("Adega Central", activeViews[0].Name)

	s.Require().Len(allViews, 2)
	s.Equal("Adega Antiga", allViews[0].Name)
	s.False(allViews[0].Active)
	s.Equal("encerrada", allViews[0].DeactivatedReason)
	s.NotNil(allViews[0].DeactivatedAt)
}

func (s *QueriesTestSuite) Test_ListParties_WithoutKindListsBoth() {
	query, err := queries.NewListPartiesQuery("", false)
	s.Require().NoError(err)

	views, err := queries.NewListPartiesQueryHandler(s.db).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(party.Client, views[0].Kind)
	s.Equal("Adega Central", views[0].Name)
	s.Equal(party.Supplier, views[1].Kind)
	s.Equal("Vidros do Norte", views[1].Name)
}

func (s *QueriesTestSuite) Test_ListParties_RejectsUnknownKind() {
	_, err := queries.NewListPartiesQuery(party.Kind("courier"), false)

	s.Error(err)
}

func (s *QueriesTestSuite) Test_ListProducts_ExcludesFreightAndArchived() {
	// Arrange
	s.Require().NoError(s.products[2].Archive("descontinuado", day))
	s.Require().NoError(productrepo.NewGormProductRepository(s.db).Update(s.T().Context(), s.products[2]))
	handler := queries.NewListProductsQueryHandler(s.db)

	// Act
	active, err := handler.Handle(s.T().Context(), queries.NewListProductsQuery(false, false))
	s.Require().NoError(err)
	all, err := handler.Handle(s.T().Context(), queries.NewListProductsQuery(true, false))
	s.Require().NoError(err)

	// Assert
	s.Len(active, 2)
	for _, p := range active {
		s.False(p.ID.IsEqual(s.products[2].ID()), "archived products are hidden")
	}
	s.Len(all, 3)
	for _, p := range all {
		s.False(p.ID.IsEqual(order.FreightProductID))
		if p.ID.IsEqual(s.products[2].ID()) {
			s.False(p.Active)
			s.Equal("descontinuado", p.DeactivatedReason)
			s.NotNil(p.DeactivatedAt)
		}
	}
}

func (s *QueriesTestSuite) Test_ListProducts_LowStockOnly() {
	// Act
	views, err := queries.NewListProductsQueryHandler(s.db).Handle(s.T().Context(), queries.NewListProductsQuery(false, true))

	// Assert
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal("Caixa 6", views[0].Details.Name)
	s.Equal([]product.Shortage{{Counter: "bottles", Level: 150}}, views[0].Shortages)
}

func (s *QueriesTestSuite) Test_ListAttachments_ByEntity() {
	// Arrange
	query, err := queries.NewListAttachmentsQuery(attachment.EntityOrder, map[string]any{"id": s.order.ID().String()})
	s.Require().NoError(err)
	other, err := queries.NewListAttachmentsQuery(attachment.EntityClient, s.client.ID().String())
	s.Require().NoError(err)
	handler := queries.NewListAttachmentsQueryHandler(s.db, stubURLs{})

	// Act
	views, err := handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)
	none, err := handler.Handle(s.T().Context(), other)
	s.Require().NoError(err)

	// Assert
	s.Require().Len(views, 1)
	s.Equal("guia.pdf", views[0].FileName)
	s.Equal(int64(2048), views[0].Size)
	s.True(views[0].EntityID.IsEqual(s.order.ID()))
	s.Empty(none)
}

func (s *QueriesTestSuite) Test_ListAttachments_RejectsBadReference() {
	_, err := queries.NewListAttachmentsQuery(attachment.EntityOrder, kernel.UUID{})

	s.Error(err)
}
