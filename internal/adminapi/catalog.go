package adminapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/webserver"
	"github.com/techbucket/techbucket-web/internal/workspace"
)

// catalogPage serves the list and editor of one catalog entity. All
// actions post back to the same page; the draft lives in the workspace so
// a failed save re-renders with every field intact.
type catalogPage[R any, D draft.Draft] struct {
	path     string
	template string
	title    string
	singular string
	manager  func(*workspace.Workspace) *crud.Manager[R, D]
	// options adds the select lists a form needs, if any.
	options func(*workspace.Workspace) interface{}
}

type catalogView[R any, D any] struct {
	webserver.Page
	Rows    []R
	Loaded  bool
	Open    bool
	Editing bool
	EditID  int64
	Draft   *D
	Options interface{}
}

func (p catalogPage[R, D]) register(g *echo.Group) {
	g.GET(p.path, p.list)
	g.POST(p.path+"/new", p.begin)
	g.POST(p.path+"/:id/edit", p.edit)
	g.POST(p.path+"/draft", p.save)
	g.POST(p.path+"/:id/delete", p.remove)
}

func (p catalogPage[R, D]) render(c echo.Context, msg, errMsg string) error {
	ws := GetWorkspace(c)
	m := p.manager(ws)
	ed := m.Editor()
	id, editing := ed.Target()
	view := &catalogView[R, D]{
		Page:    page(c, p.title, strings.TrimPrefix(p.path, "/")),
		Rows:    m.View().Rows(),
		Loaded:  m.View().Loaded(),
		Open:    ed.Open(),
		Editing: editing,
		EditID:  id,
		Draft:   ed.Draft(),
	}
	view.Message = msg
	view.Error = errMsg
	if p.options != nil {
		view.Options = p.options(ws)
	}
	return c.Render(http.StatusOK, p.template, view)
}

func (p catalogPage[R, D]) list(c echo.Context) error {
	m := p.manager(GetWorkspace(c))
	if err := m.Load(c.Request().Context()); err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		return p.render(c, "", failure(err, fmt.Sprintf("Failed to load %s", strings.ToLower(p.title))))
	}
	return p.render(c, "", "")
}

func (p catalogPage[R, D]) begin(c echo.Context) error {
	p.manager(GetWorkspace(c)).New()
	return p.render(c, "", "")
}

func (p catalogPage[R, D]) edit(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return p.render(c, "", fmt.Sprintf("Invalid %s ID", strings.ToLower(p.singular)))
	}
	if err := p.manager(GetWorkspace(c)).Edit(id); err != nil {
		return p.render(c, "", fmt.Sprintf("%s not found", p.singular))
	}
	return p.render(c, "", "")
}

func (p catalogPage[R, D]) save(c echo.Context) error {
	m := p.manager(GetWorkspace(c))
	op := c.FormValue("op")
	if op == "cancel" {
		m.Cancel()
		return p.render(c, "", "")
	}
	if !m.Editor().Open() {
		return p.render(c, "", "The form was closed, please start again")
	}

	form, err := c.FormParams()
	if err != nil {
		return p.render(c, "", "Unable to read the form")
	}
	f, ok := any(m.Editor().Draft()).(draft.Form)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "draft does not accept form values")
	}
	f.Apply(form)

	action, field, index := parseOp(op)
	switch action {
	case "add":
		if l := f.SubList(field); l != nil {
			l.Append()
		}
		return p.render(c, "", "")
	case "remove":
		if l := f.SubList(field); l != nil {
			_ = l.RemoveAt(index)
		}
		return p.render(c, "", "")
	}

	msg, err := m.Submit(c.Request().Context())
	if err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		return p.render(c, "", failure(err, fmt.Sprintf("Failed to save %s", strings.ToLower(p.singular))))
	}
	if msg == "" {
		msg = fmt.Sprintf("%s saved successfully", p.singular)
	}
	return p.render(c, msg, "")
}

func (p catalogPage[R, D]) remove(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return p.render(c, "", fmt.Sprintf("Invalid %s ID", strings.ToLower(p.singular)))
	}
	msg, err := p.manager(GetWorkspace(c)).Delete(c.Request().Context(), id)
	if err != nil {
		if signedOut(c, err) {
			return toLogin(c)
		}
		return p.render(c, "", failure(err, fmt.Sprintf("Failed to delete %s", strings.ToLower(p.singular))))
	}
	if msg == "" {
		msg = fmt.Sprintf("%s deleted successfully", p.singular)
	}
	return p.render(c, msg, "")
}
