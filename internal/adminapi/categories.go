package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

func registerCategoryRoutes(g *echo.Group) {
	catalogPage[domain.Category, draft.CategoryDraft]{
		path:     "/categories",
		template: "admin/categories",
		title:    "Categories",
		singular: "Category",
		manager: func(ws *workspace.Workspace) *crud.Manager[domain.Category, draft.CategoryDraft] {
			return ws.Categories
		},
	}.register(g)
}
