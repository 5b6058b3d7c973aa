package http

import (
	"net/http"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// UpsertProduct handles POST /api/v1/products - creates or replaces a catalog entry.
func (s *Server) UpsertProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpsertProductCommand(newProduct.Name, newProduct.StandardHours)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.UpsertProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Product{Name: cmd.Name(), StandardHours: cmd.StandardHours()})
}

// GetProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:name.
func (s *Server) GetProduct(ctx echo.Context) error {
	query, err := queries.NewGetProductQuery(ctx.Param("name"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	product, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(product))
}
