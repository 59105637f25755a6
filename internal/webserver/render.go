package webserver

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates static
var assets embed.FS

// Page carries the fields every layout reads.
type Page struct {
	Title    string
	Nav      string
	Message  string
	Error    string
	Operator string
	// Refresh reloads RefreshURL (or the current page) after that many seconds.
	Refresh    int
	RefreshURL string
}

type ErrorPage struct {
	Page
	Code   int
	Detail string
}

// layouts maps a template directory onto the layout wrapping its pages.
var layouts = map[string]string{
	"site":  "layouts/site.html",
	"admin": "layouts/admin.html",
	"auth":  "layouts/bare.html",
	".":     "layouts/bare.html",
}

var funcs = template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"id":   func(v int64) string { return strconv.FormatInt(v, 10) },
	"join": strings.Join,
	"usd": func(p *float64) string {
		if p == nil || *p == 0 {
			return "Contact for pricing"
		}
		return "$" + strconv.FormatFloat(*p, 'f', -1, 64)
	},
	"npr": func(v float64) string {
		if v == 0 {
			return "Free"
		}
		return "NPR " + strconv.FormatFloat(v, 'f', -1, 64)
	},
	"date": func(s string) string {
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return s
		}
		return t.Format("Jan 2, 2006")
	},
	"field": func(name, label string, items []string) map[string]interface{} {
		return map[string]interface{}{"Field": name, "Label": label, "Items": items}
	},
	"fallback": func(s, fallback string) string {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	},
}

// Renderer executes one pre-parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	err := fs.WalkDir(assets, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), ".html")
		dir := path.Dir(name)
		if dir == "layouts" || dir == "partials" {
			return nil
		}
		layout, ok := layouts[dir]
		if !ok {
			return errors.Errorf("no layout for template %s", name)
		}
		t, err := template.New(path.Base(layout)).Funcs(funcs).
			ParseFS(assets, "templates/"+layout, "templates/partials/*.html", p)
		if err != nil {
			return errors.Wrapf(err, "parse template %s", name)
		}
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page template is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
