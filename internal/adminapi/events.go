package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

type eventOptions struct {
	Types    []domain.EventType
	Statuses []domain.EventStatus
}

func registerEventRoutes(g *echo.Group) {
	catalogPage[domain.Event, draft.EventDraft]{
		path:     "/events",
		template: "admin/events",
		title:    "Events",
		singular: "Event",
		manager: func(ws *workspace.Workspace) *crud.Manager[domain.Event, draft.EventDraft] {
			return ws.Events
		},
		options: func(*workspace.Workspace) interface{} {
			return eventOptions{Types: domain.EventTypes(), Statuses: domain.EventStatuses()}
		},
	}.register(g)
}
