package site

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type servicesView struct {
	webserver.Page
	Services []domain.PublicService
	Selected domain.PublicService
}

func registerServiceRoutes(srv *webserver.Server, h *handlers) {
	srv.GET("/services", h.services)
}

// services shows the grid and the details of ?service=<id>, defaulting to
// the first service.
func (h *handlers) services(c echo.Context) error {
	selected, _ := h.catalog.Service(cast.ToInt64(c.QueryParam("service")))
	return c.Render(http.StatusOK, "site/services", &servicesView{
		Page:     webserver.Page{Title: "Services", Nav: "services"},
		Services: h.catalog.Services,
		Selected: selected,
	})
}
