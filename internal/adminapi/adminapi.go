// Package adminapi serves the back office pages under /admin.
package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/session"
	"github.com/techbucket/techbucket-web/internal/validation"
	"github.com/techbucket/techbucket-web/internal/webserver"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

const (
	workspaceKey = "admin.workspace"
	storeKey     = "admin.store"
	sessionKey   = "workspace"
)

// AuditLog lists recorded back office writes, newest first.
type AuditLog interface {
	Recent(limit int) ([]domain.SysOprLog, error)
}

// Register mounts every back office route on srv. audit may be nil.
func Register(srv *webserver.Server, store *workspace.Store, audit AuditLog) {
	g := srv.Admin()
	g.Use(workspaceMiddleware(store))
	registerAuthRoutes(g)

	protected := g.Group("", gateMiddleware)
	registerDashboardRoutes(protected, audit)
	registerProductRoutes(protected)
	registerBrandRoutes(protected)
	registerCategoryRoutes(protected)
	registerServiceRoutes(protected)
	registerEventRoutes(protected)
	registerQuoteRoutes(protected)
	registerSupportRoutes(protected)
	registerInquiryRoutes(protected)
	registerRegistrationRoutes(protected)
	registerSettingsRoutes(protected)
}

// GetWorkspace returns the workspace bound to the current admin session.
func GetWorkspace(c echo.Context) *workspace.Workspace {
	ws, _ := c.Get(workspaceKey).(*workspace.Workspace)
	return ws
}

func getStore(c echo.Context) *workspace.Store {
	s, _ := c.Get(storeKey).(*workspace.Store)
	return s
}

// workspaceMiddleware finds the workspace named by the session cookie, or
// starts a new one.
func workspaceMiddleware(store *workspace.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := webserver.SessionString(c, webserver.AdminSession, sessionKey)
			ws, ok := store.Get(id)
			if !ok {
				ws = store.Create()
				if err := webserver.SetSessionString(c, webserver.AdminSession, sessionKey, ws.ID); err != nil {
					return err
				}
			}
			c.Set(workspaceKey, ws)
			c.Set(storeKey, store)
			return next(c)
		}
	}
}

// gateMiddleware resolves the session gate before any protected page and
// serializes the requests of one workspace.
func gateMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ws := GetWorkspace(c)
		switch ws.Gate.Resolve(c.Request().Context()) {
		case session.Checking:
			return c.Render(http.StatusOK, "auth/loading", &webserver.Page{
				Title:   "Loading",
				Refresh: 1,
			})
		case session.Unauthenticated:
			return c.Redirect(http.StatusSeeOther, "/admin/login")
		}
		ws.Lock()
		defer ws.Unlock()
		ws.SetRemote(c.RealIP())
		return next(c)
	}
}

func page(c echo.Context, title, nav string) webserver.Page {
	return webserver.Page{
		Title:    title,
		Nav:      nav,
		Operator: GetWorkspace(c).Gate.Operator(),
	}
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// failure turns err into the single line shown above a form. Validation
// and backend messages are kept verbatim.
func failure(err error, fallback string) string {
	if validation.IsValidation(err) {
		return err.Error()
	}
	return apiclient.Message(err, fallback)
}

// signedOut reports whether err means the backend session is gone, in which
// case the caller should send the browser to the login page.
func signedOut(c echo.Context, err error) bool {
	if !apiclient.IsUnauthorized(err) {
		return false
	}
	GetWorkspace(c).Gate.Invalidate()
	return true
}

func toLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

// parseOp splits a form op such as "remove:features:2".
func parseOp(op string) (action, field string, index int) {
	parts := strings.SplitN(op, ":", 3)
	action = parts[0]
	if len(parts) > 1 {
		field = parts[1]
	}
	index = -1
	if len(parts) > 2 {
		if i, err := strconv.Atoi(parts[2]); err == nil {
			index = i
		}
	}
	return action, field, index
}
