package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

const activityLimit = 10

type dashboardView struct {
	webserver.Page
	Dashboard domain.Dashboard
	Admin     *domain.AdminUser
	Activity  []domain.SysOprLog
}

func registerDashboardRoutes(g *echo.Group, audit AuditLog) {
	h := func(c echo.Context) error { return getDashboard(c, audit) }
	g.GET("", h)
	g.GET("/", h)
}

func getDashboard(c echo.Context, audit AuditLog) error {
	ws := GetWorkspace(c)
	view := &dashboardView{Page: page(c, "Dashboard", "dashboard"), Admin: ws.Gate.Admin()}
	d, err := ws.Client.Dashboard(c.Request().Context())
	if err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		view.Error = failure(err, "Failed to load dashboard")
	}
	view.Dashboard = d
	if audit != nil {
		if view.Activity, err = audit.Recent(activityLimit); err != nil {
			zap.L().Warn("load admin activity", zap.Error(err))
		}
	}
	return c.Render(http.StatusOK, "admin/dashboard", view)
}
