package http

import (
	"net/http"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListParties handles GET /api/v1/parties.
func (s *Server) ListParties(ctx echo.Context, params servers.ListPartiesParams) error {
	var kind party.Kind
	if params.Kind != nil {
		parsed, err := party.ParseKind(string(*params.Kind))
		if err != nil {
			return err
		}
		kind = parsed
	}
	query, err := queries.NewListPartiesQuery(kind, deref(params.IncludeArchived))
	if err != nil {
		return err
	}
	parties, err := s.h.ListParties.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Party, len(parties))
	for i, p := range parties {
		response[i] = partyDTO(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateParty handles POST /api/v1/parties.
func (s *Server) CreateParty(ctx echo.Context) error {
	var body servers.CreatePartyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	kind, err := party.ParseKind(string(body.Kind))
	if err != nil {
		return err
	}
	partyID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartyCommand(partyID, kind, body.Name, party.Contact{
		Email:   deref(body.Email),
		Phone:   deref(body.Phone),
		Address: deref(body.Address),
		TaxID:   deref(body.TaxId),
	})
	if err != nil {
		return err
	}
	if err := s.h.CreateParty.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: partyID.Bytes()})
}

// ArchiveParty handles POST /api/v1/parties/{partyId}/archive.
func (s *Server) ArchiveParty(ctx echo.Context, partyId openapi_types.UUID) error {
	var body servers.ArchivePartyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(partyId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewArchivePartyCommand(PrincipalOf(ctx), id, body.Reason)
	if err != nil {
		return err
	}
	if err := s.h.PartyLifecycle.Archive(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReactivateParty handles POST /api/v1/parties/{partyId}/reactivate.
func (s *Server) ReactivateParty(ctx echo.Context, partyId openapi_types.UUID) error {
	id, err := toKernel(partyId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewReactivatePartyCommand(PrincipalOf(ctx), id)
	if err != nil {
		return err
	}
	if err := s.h.PartyLifecycle.Reactivate(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query := queries.NewListProductsQuery(deref(params.IncludeInactive), deref(params.LowStock))
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productDTO(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cost, err := parseMoney("cost price", body.CostPrice)
	if err != nil {
		return err
	}
	sale, err := parseMoney("sale price", body.SalePrice)
	if err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, product.Details{
		Name:        body.Name,
		Brand:       deref(body.Brand),
		Category:    deref(body.Category),
		CostPrice:   cost,
		SalePrice:   sale,
		WeightGrams: body.WeightGrams,
	}, stockOf(body.Stock))
	if err != nil {
		return err
	}
	if err := s.h.Products.Create(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Bytes()})
}

// AdjustProductStock handles PUT /api/v1/products/{productId}/stock.
func (s *Server) AdjustProductStock(ctx echo.Context, productId openapi_types.UUID) error {
	var body servers.AdjustProductStockJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdjustProductStockCommand(id, stockOf(body))
	if err != nil {
		return err
	}
	if err := s.h.Products.AdjustStock(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveProduct handles POST /api/v1/products/{productId}/archive.
func (s *Server) ArchiveProduct(ctx echo.Context, productId openapi_types.UUID) error {
	var body servers.ArchiveProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernel(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewArchiveProductCommand(PrincipalOf(ctx), id, body.Reason)
	if err != nil {
		return err
	}
	if err := s.h.Products.Archive(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReactivateProduct handles POST /api/v1/products/{productId}/reactivate.
func (s *Server) ReactivateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := toKernel(productId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewReactivateProductCommand(PrincipalOf(ctx), id)
	if err != nil {
		return err
	}
	if err := s.h.Products.Reactivate(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func stockOf(s servers.Stock) product.Stock {
	return product.Stock{Bottles: s.Bottles, Caps: s.Caps, Labels: s.Labels}
}
