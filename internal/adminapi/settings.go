package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type passwordPayload struct {
	CurrentPassword string `form:"current_password" validate:"required" label:"Current Password"`
	NewPassword     string `form:"new_password" validate:"required" label:"New Password"`
	ConfirmPassword string `form:"confirm_password" validate:"required" label:"Confirm Password"`
}

type emailPayload struct {
	SMTPServer   string `form:"smtp_server" validate:"required" label:"SMTP Server"`
	SMTPPort     int    `form:"smtp_port" validate:"required,min=1,max=65535" label:"SMTP Port"`
	SMTPUsername string `form:"smtp_username"`
	SMTPPassword string `form:"smtp_password"`
	UseTLS       bool   `form:"use_tls"`
}

type settingsView struct {
	webserver.Page
	Admin         *domain.AdminUser
	Email         domain.EmailSettings
	PasswordError string
	PasswordOK    string
	EmailError    string
	EmailOK       string
}

func registerSettingsRoutes(g *echo.Group) {
	g.GET("/settings", getSettings)
	g.POST("/settings/password", postPassword)
	g.POST("/settings/email", postEmailSettings)
}

func newSettingsView(c echo.Context) *settingsView {
	return &settingsView{
		Page:  page(c, "Settings", "settings"),
		Admin: GetWorkspace(c).Gate.Admin(),
		Email: domain.DefaultEmailSettings(),
	}
}

func getSettings(c echo.Context) error {
	return c.Render(http.StatusOK, "admin/settings", newSettingsView(c))
}

func postPassword(c echo.Context) error {
	view := newSettingsView(c)
	var payload passwordPayload
	if err := c.Bind(&payload); err != nil {
		view.PasswordError = "Failed to change password"
		return c.Render(http.StatusOK, "admin/settings", view)
	}
	if payload.NewPassword != payload.ConfirmPassword {
		view.PasswordError = "New passwords do not match"
		return c.Render(http.StatusOK, "admin/settings", view)
	}
	if err := c.Validate(&payload); err != nil {
		view.PasswordError = err.Error()
		return c.Render(http.StatusOK, "admin/settings", view)
	}

	_, err := GetWorkspace(c).Client.ChangePassword(c.Request().Context(), domain.PasswordChange{
		CurrentPassword: payload.CurrentPassword,
		NewPassword:     payload.NewPassword,
	})
	switch {
	case err == nil:
		view.PasswordOK = "Password changed successfully"
	case signedOut(c, err):
		return toLogin(c)
	case apiclient.IsTransport(err):
		view.PasswordError = "Network error. Please try again."
	default:
		view.PasswordError = failure(err, "Failed to change password")
	}
	return c.Render(http.StatusOK, "admin/settings", view)
}

func postEmailSettings(c echo.Context) error {
	view := newSettingsView(c)
	var payload emailPayload
	if err := c.Bind(&payload); err != nil {
		view.EmailError = "Failed to update email settings"
		return c.Render(http.StatusOK, "admin/settings", view)
	}
	view.Email = domain.EmailSettings{
		SMTPServer:   payload.SMTPServer,
		SMTPPort:     payload.SMTPPort,
		SMTPUsername: payload.SMTPUsername,
		SMTPPassword: payload.SMTPPassword,
		UseTLS:       payload.UseTLS,
	}
	if err := c.Validate(&payload); err != nil {
		view.EmailError = err.Error()
		return c.Render(http.StatusOK, "admin/settings", view)
	}

	_, err := GetWorkspace(c).Client.SaveEmailSettings(c.Request().Context(), view.Email)
	switch {
	case err == nil:
		view.EmailOK = "Email settings updated successfully"
	case signedOut(c, err):
		return toLogin(c)
	case apiclient.IsTransport(err):
		view.EmailError = "Network error. Please try again."
	default:
		view.EmailError = failure(err, "Failed to update email settings")
	}
	view.Email.SMTPPassword = ""
	return c.Render(http.StatusOK, "admin/settings", view)
}
