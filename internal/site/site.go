// Package site serves the public marketing pages and lead forms.
package site

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/content"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/validation"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

const receiptKey = "receipt"

// LeadSubmitter is the part of leads.Submitter the pages use.
type LeadSubmitter interface {
	SubmitQuote(ctx context.Context, f leads.QuoteForm) (leads.Receipt, error)
	SubmitSupportCase(ctx context.Context, f leads.SupportForm) (leads.Receipt, error)
	SubmitInquiry(ctx context.Context, f leads.InquiryForm) (leads.Receipt, error)
	SubmitRegistration(ctx context.Context, ev domain.PublicEvent, f leads.RegistrationForm) (leads.Receipt, error)
}

type handlers struct {
	catalog *content.Catalog
	leads   LeadSubmitter
	now     func() time.Time
}

// Register mounts the public pages on srv.
func Register(srv *webserver.Server, catalog *content.Catalog, submitter LeadSubmitter) {
	h := &handlers{catalog: catalog, leads: submitter, now: time.Now}
	srv.GET("/", h.home)
	srv.GET("/about", h.about)
	registerProductRoutes(srv, h)
	registerServiceRoutes(srv, h)
	registerSupportRoutes(srv, h)
	registerEventRoutes(srv, h)
	registerContactRoutes(srv, h)
}

type homeView struct {
	webserver.Page
	Services []domain.PublicService
	Products []domain.PublicProduct
}

func (h *handlers) home(c echo.Context) error {
	return c.Render(http.StatusOK, "site/home", &homeView{
		Page:     webserver.Page{Title: "Home", Nav: "home"},
		Services: h.catalog.FeaturedServices(),
		Products: h.catalog.FeaturedProducts(3),
	})
}

func (h *handlers) about(c echo.Context) error {
	return c.Render(http.StatusOK, "site/about", &webserver.Page{Title: "About Us", Nav: "about"})
}

// receipt pops the confirmation left by a successful post of kind. The page
// refreshes itself to an empty form once it expires.
func (h *handlers) receipt(c echo.Context, kind domain.Kind, p *webserver.Page) *leads.Receipt {
	raw := webserver.Flash(c, webserver.SiteSession, receiptKey)
	if raw == "" {
		return nil
	}
	r, err := leads.DecodeReceipt(raw)
	if err != nil {
		zap.L().Debug("drop unreadable receipt", zap.Error(err))
		return nil
	}
	now := h.now()
	if r.Kind != kind || !r.Active(now) {
		return nil
	}
	p.Refresh = r.Remaining(now)
	p.RefreshURL = c.Request().URL.Path
	return &r
}

// confirm stores r for the next GET of target and redirects there.
func confirm(c echo.Context, r leads.Receipt, target string) error {
	if err := webserver.AddFlash(c, webserver.SiteSession, receiptKey, r.Encode()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// submitError renders the message shown above a lead form that was not
// accepted. The posted values are kept by the caller.
func submitError(err error, fallback string) string {
	if validation.IsValidation(err) {
		return err.Error()
	}
	if apiclient.IsTransport(err) {
		return fallback
	}
	if msg := apiclient.Message(err, ""); msg != "" {
		return "Error: " + msg
	}
	return fallback
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}
