package site

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/leads"
	"github.com/techbucket/techbucket-web/internal/webserver"
)

type eventsView struct {
	webserver.Page
	Events []domain.PublicEvent
}

type registerView struct {
	webserver.Page
	Event   domain.PublicEvent
	Form    leads.RegistrationForm
	Receipt *leads.Receipt
}

func registerEventRoutes(srv *webserver.Server, h *handlers) {
	srv.GET("/events", h.events)
	srv.GET("/events/:id/register", h.register)
	srv.POST("/events/:id/register", h.postRegister)
}

func (h *handlers) events(c echo.Context) error {
	return c.Render(http.StatusOK, "site/events", &eventsView{
		Page:   webserver.Page{Title: "Events", Nav: "events"},
		Events: h.catalog.Events,
	})
}

func (h *handlers) event(c echo.Context) (domain.PublicEvent, error) {
	id, ok := parseID(c)
	if !ok {
		return domain.PublicEvent{}, echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	ev, found := h.catalog.Event(id)
	if !found {
		return ev, echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return ev, nil
}

func (h *handlers) register(c echo.Context) error {
	ev, err := h.event(c)
	if err != nil {
		return err
	}
	view := &registerView{Page: webserver.Page{Title: "Register for " + ev.Title, Nav: "events"}, Event: ev}
	view.Receipt = h.receipt(c, domain.KindRegistration, &view.Page)
	return c.Render(http.StatusOK, "site/register", view)
}

func (h *handlers) postRegister(c echo.Context) error {
	ev, err := h.event(c)
	if err != nil {
		return err
	}
	var form leads.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read the registration form")
	}
	r, err := h.leads.SubmitRegistration(c.Request().Context(), ev, form)
	if err != nil {
		view := &registerView{Page: webserver.Page{Title: "Register for " + ev.Title, Nav: "events"}, Event: ev, Form: form}
		view.Error = submitError(err, "Error submitting event registration. Please try again.")
		return c.Render(http.StatusOK, "site/register", view)
	}
	return confirm(c, r, fmt.Sprintf("/events/%d/register", ev.ID))
}
