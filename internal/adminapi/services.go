package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// registerServiceRoutes registers service catalog routes
func registerServiceRoutes(g *echo.Group) {
	catalogPage[domain.Service, draft.ServiceDraft]{
		path:     "/services",
		template: "admin/services",
		title:    "Services",
		singular: "Service",
		manager: func(ws *workspace.Workspace) *crud.Manager[domain.Service, draft.ServiceDraft] {
			return ws.Services
		},
	}.register(g)
}
