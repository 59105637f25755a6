package webserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/techbucket/techbucket-web/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.Web.Secret = "webserver-test-secret"
	srv, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func serve(srv *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(newTestServer(t), http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestNotFoundPage(t *testing.T) {
	rec := serve(newTestServer(t), http.MethodGet, "/no/such/page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>404</h1>") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	srv := newTestServer(t)
	srv.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	})
	srv.GET("/panic", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := serve(srv, http.MethodGet, "/boom")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Product not found") {
		t.Errorf("boom = %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(srv, http.MethodGet, "/panic")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong. Please try again.") {
		t.Errorf("panic body = %s", rec.Body.String())
	}
}

func TestStaticAssets(t *testing.T) {
	rec := serve(newTestServer(t), http.MethodGet, "/static/site.css")
	if rec.Code != http.StatusOK {
		t.Errorf("site.css status = %d", rec.Code)
	}
}

func TestSessionFlash(t *testing.T) {
	srv := newTestServer(t)
	srv.POST("/set", func(c echo.Context) error {
		if err := AddFlash(c, SiteSession, "receipt", "hello"); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	srv.GET("/pop", func(c echo.Context) error {
		return c.String(http.StatusOK, "["+Flash(c, SiteSession, "receipt")+"]")
	})

	rec := serve(srv, http.MethodPost, "/set")
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	pop := func(cs []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/pop", nil)
		for _, c := range cs {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, req)
		return rec
	}
	first := pop(cookies)
	if first.Body.String() != "[hello]" {
		t.Fatalf("first pop = %q", first.Body.String())
	}
	second := pop(first.Result().Cookies())
	if second.Body.String() != "[]" {
		t.Errorf("flash survived a read: %q", second.Body.String())
	}
}

func TestSessionSecret(t *testing.T) {
	if got := string(sessionSecret("configured")); got != "configured" {
		t.Errorf("configured secret = %q", got)
	}
	a, b := sessionSecret(""), sessionSecret("")
	if len(a) != generatedSecretLength || string(a) == string(b) {
		t.Errorf("generated secrets %q and %q", a, b)
	}
	if config.DefaultAppConfig().Web.Secret != "" {
		t.Error("defaults must not carry a signing key")
	}
}
