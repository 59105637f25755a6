package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// productOptions feeds the brand and category selects of the product form.
type productOptions struct {
	Brands     []domain.Brand
	Categories []domain.Category
}

// registerProductRoutes registers product management routes
func registerProductRoutes(g *echo.Group) {
	catalogPage[domain.Product, draft.ProductDraft]{
		path:     "/products",
		template: "admin/products",
		title:    "Products",
		singular: "Product",
		manager: func(ws *workspace.Workspace) *crud.Manager[domain.Product, draft.ProductDraft] {
			return ws.Products
		},
		options: func(ws *workspace.Workspace) interface{} {
			return productOptions{
				Brands:     ws.Brands.View().Rows(),
				Categories: ws.Categories.View().Rows(),
			}
		},
	}.register(g)
}
