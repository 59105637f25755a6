package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// registerBrandRoutes registers brand CRUD routes
func registerBrandRoutes(g *echo.Group) {
	catalogPage[domain.Brand, draft.BrandDraft]{
		path:     "/brands",
		template: "admin/brands",
		title:    "Brands",
		singular: "Brand",
		manager: func(ws *workspace.Workspace) *crud.Manager[domain.Brand, draft.BrandDraft] {
			return ws.Brands
		},
	}.register(g)
}
