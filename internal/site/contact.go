package site

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type contactView struct {
	webserver.Page
	Form    leads.InquiryForm
	Receipt *leads.Receipt
}

func registerContactRoutes(srv *webserver.Server, h *handlers) {
	srv.GET("/contact", h.contact)
	srv.POST("/contact", h.postContact)
}

func (h *handlers) contact(c echo.Context) error {
	view := &contactView{Page: webserver.Page{Title: "Contact Us", Nav: "contact"}}
	view.Receipt = h.receipt(c, domain.KindInquiry, &view.Page)
	return c.Render(http.StatusOK, "site/contact", view)
}

func (h *handlers) postContact(c echo.Context) error {
	var form leads.InquiryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read the contact form")
	}
	r, err := h.leads.SubmitInquiry(c.Request().Context(), form)
	if err != nil {
		view := &contactView{Page: webserver.Page{Title: "Contact Us", Nav: "contact"}, Form: form}
		view.Error = submitError(err, "Error submitting inquiry. Please try again.")
		return c.Render(http.StatusOK, "site/contact", view)
	}
	return confirm(c, r, "/contact")
}
