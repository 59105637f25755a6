package site

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type supportView struct {
	webserver.Page
	Form       leads.SupportForm
	IssueTypes []domain.IssueType
	Priorities []domain.Priority
	Receipt    *leads.Receipt
}

func registerSupportRoutes(srv *webserver.Server, h *handlers) {
	srv.GET("/support", h.support)
	srv.POST("/support", h.postSupport)
}

func newSupportView(form leads.SupportForm) *supportView {
	return &supportView{
		Page:       webserver.Page{Title: "Support", Nav: "support"},
		Form:       form,
		IssueTypes: domain.IssueTypes(),
		Priorities: domain.Priorities(),
	}
}

func (h *handlers) support(c echo.Context) error {
	view := newSupportView(leads.NewSupportForm())
	view.Receipt = h.receipt(c, domain.KindSupportCase, &view.Page)
	return c.Render(http.StatusOK, "site/support", view)
}

func (h *handlers) postSupport(c echo.Context) error {
	var form leads.SupportForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read the support form")
	}
	r, err := h.leads.SubmitSupportCase(c.Request().Context(), form)
	if err != nil {
		view := newSupportView(form)
		view.Error = submitError(err, "Error submitting support case. Please try again.")
		return c.Render(http.StatusOK, "site/support", view)
	}
	return confirm(c, r, "/support")
}
