package adminapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/webserver"
	"github.com/techbucket/techbucket-web/internal/workflow"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// leadPage lists one kind of inbound lead and applies status changes to it.
type leadPage[R any] struct {
	path       string
	template   string
	title      string
	singular   string
	controller func(*workspace.Workspace) *workflow.Controller[R]
	statuses   []string
	// notes sends admin_notes along with the status.
	notes bool
}

type leadView[R any] struct {
	webserver.Page
	Rows     []R
	Loaded   bool
	Selected *R
	Statuses []string
	Export   string
}

func (p leadPage[R]) register(g *echo.Group) {
	g.GET(p.path, p.list)
	g.GET(p.path+"/export.csv", p.export)
	g.POST(p.path+"/:id/status", p.transition)
}

func (p leadPage[R]) render(c echo.Context, selected *R, msg, errMsg string) error {
	ctrl := p.controller(GetWorkspace(c))
	view := &leadView[R]{
		Page:     page(c, p.title, strings.TrimPrefix(p.path, "/")),
		Rows:     ctrl.View().Rows(),
		Loaded:   ctrl.View().Loaded(),
		Selected: selected,
		Statuses: p.statuses,
		Export:   "/admin" + p.path + "/export.csv",
	}
	view.Message = msg
	view.Error = errMsg
	return c.Render(http.StatusOK, p.template, view)
}

// list reads the collection. ?respond=<id> opens the response panel.
func (p leadPage[R]) list(c echo.Context) error {
	ctrl := p.controller(GetWorkspace(c))
	if err := ctrl.Load(c.Request().Context()); err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		return p.render(c, nil, "", failure(err, fmt.Sprintf("Failed to load %s", strings.ToLower(p.title))))
	}
	var selected *R
	if raw := c.QueryParam("respond"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			if rec, ok := ctrl.Find(id); ok {
				selected = &rec
			}
		}
		if selected == nil {
			return p.render(c, nil, "", fmt.Sprintf("%s not found", p.singular))
		}
	}
	return p.render(c, selected, "", "")
}

func (p leadPage[R]) transition(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return p.render(c, nil, "", fmt.Sprintf("Invalid %s ID", strings.ToLower(p.singular)))
	}
	var notes *string
	if p.notes {
		n := c.FormValue("admin_notes")
		notes = &n
	}
	msg, err := p.controller(GetWorkspace(c)).Transition(c.Request().Context(), id, c.FormValue("status"), notes)
	return p.finish(c, msg, err)
}

func (p leadPage[R]) finish(c echo.Context, msg string, err error) error {
	if err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		return p.render(c, nil, "", failure(err, fmt.Sprintf("Failed to update %s", strings.ToLower(p.singular))))
	}
	if msg == "" {
		msg = fmt.Sprintf("%s updated successfully", p.singular)
	}
	return p.render(c, nil, msg, "")
}

// export writes the rows currently in the view as CSV, reading them first
// if the page was never opened.
func (p leadPage[R]) export(c echo.Context) error {
	ctrl := p.controller(GetWorkspace(c))
	if !ctrl.View().Loaded() {
		if err := ctrl.Load(c.Request().Context()); err != nil {
			if signedOut(c, err) {
				return toLogin(c)
			}
			return echo.NewHTTPError(http.StatusBadGateway, failure(err, fmt.Sprintf("Failed to load %s", strings.ToLower(p.title))))
		}
	}
	rows := ctrl.View().Rows()
	filename := strings.TrimPrefix(p.path, "/") + ".csv"
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	resp.WriteHeader(http.StatusOK)
	if err := gocsv.Marshal(rows, resp); err != nil {
		zap.L().Error("csv export failed", zap.String("kind", string(ctrl.Kind())), zap.Error(err))
		return err
	}
	return nil
}

func statusValues[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func registerQuoteRoutes(g *echo.Group) {
	leadPage[domain.QuoteRequest]{
		path:     "/quotes",
		template: "admin/quotes",
		title:    "Quote Requests",
		singular: "Quote request",
		controller: func(ws *workspace.Workspace) *workflow.Controller[domain.QuoteRequest] {
			return ws.Quotes
		},
		statuses: statusValues(domain.QuoteStatuses()),
		notes:    true,
	}.register(g)
}

func registerSupportRoutes(g *echo.Group) {
	leadPage[domain.SupportCase]{
		path:     "/support",
		template: "admin/support",
		title:    "Support Cases",
		singular: "Support case",
		controller: func(ws *workspace.Workspace) *workflow.Controller[domain.SupportCase] {
			return ws.Support
		},
		statuses: statusValues(domain.SupportStatuses()),
		notes:    true,
	}.register(g)
}

func registerInquiryRoutes(g *echo.Group) {
	leadPage[domain.Inquiry]{
		path:     "/inquiries",
		template: "admin/inquiries",
		title:    "Inquiries",
		singular: "Inquiry",
		controller: func(ws *workspace.Workspace) *workflow.Controller[domain.Inquiry] {
			return ws.Inquiries
		},
		statuses: statusValues(domain.InquiryStatuses()),
		notes:    true,
	}.register(g)
}

// registerRegistrationRoutes adds confirm and cancel on top of the list.
func registerRegistrationRoutes(g *echo.Group) {
	p := leadPage[domain.EventRegistration]{
		path:     "/registrations",
		template: "admin/registrations",
		title:    "Event Registrations",
		singular: "Registration",
		controller: func(ws *workspace.Workspace) *workflow.Controller[domain.EventRegistration] {
			return ws.Registrations.Controller
		},
		statuses: statusValues(domain.RegistrationStatuses()),
	}
	p.register(g)
	g.POST(p.path+"/:id/confirm", func(c echo.Context) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return p.render(c, nil, "", "Invalid registration ID")
		}
		msg, err := GetWorkspace(c).Registrations.Confirm(c.Request().Context(), id)
		return p.finish(c, msg, err)
	})
	g.POST(p.path+"/:id/cancel", func(c echo.Context) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return p.render(c, nil, "", "Invalid registration ID")
		}
		msg, err := GetWorkspace(c).Registrations.Cancel(c.Request().Context(), id)
		return p.finish(c, msg, err)
	})
}
