package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/session"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type loginPayload struct {
	Username string `form:"username" validate:"required" label:"Username"`
	Password string `form:"password" validate:"required" label:"Password"`
}

type loginView struct {
	webserver.Page
	Username string
}

func registerAuthRoutes(g *echo.Group) {
	g.GET("/login", getLogin)
	g.POST("/login", postLogin)
	g.POST("/logout", postLogout)
}

func renderLogin(c echo.Context, username, msg string) error {
	return c.Render(http.StatusOK, "auth/login", &loginView{
		Page:     webserver.Page{Title: "Admin Login", Error: msg},
		Username: username,
	})
}

func getLogin(c echo.Context) error {
	ws := GetWorkspace(c)
	switch ws.Gate.Resolve(c.Request().Context()) {
	case session.Authenticated:
		return c.Redirect(http.StatusSeeOther, "/admin")
	case session.Checking:
		return c.Render(http.StatusOK, "auth/loading", &webserver.Page{Title: "Loading", Refresh: 1})
	}
	return renderLogin(c, "", "")
}

func postLogin(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return renderLogin(c, "", "Login failed")
	}
	if err := c.Validate(&payload); err != nil {
		return renderLogin(c, payload.Username, err.Error())
	}

	ws := GetWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	ctx := c.Request().Context()
	if _, err := ws.Client.Login(ctx, payload.Username, payload.Password); err != nil {
		msg := apiclient.Message(err, "Login failed")
		if apiclient.IsTransport(err) {
			msg = "Network error. Please try again."
		}
		zap.L().Info("admin login rejected", zap.String("username", payload.Username), zap.Error(err))
		return renderLogin(c, payload.Username, msg)
	}
	if ws.Gate.Recheck(ctx) != session.Authenticated {
		return renderLogin(c, payload.Username, "Login failed")
	}
	zap.L().Info("admin signed in", zap.String("username", ws.Gate.Operator()))
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// postLogout drops the workspace whatever the backend answers.
func postLogout(c echo.Context) error {
	ws := GetWorkspace(c)
	if err := ws.Client.Logout(c.Request().Context()); err != nil {
		zap.L().Warn("backend logout failed", zap.Error(err))
	}
	ws.Gate.Invalidate()
	getStore(c).Remove(ws.ID)
	if err := webserver.ClearSession(c, webserver.AdminSession); err != nil {
		zap.L().Warn("clear admin session", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
