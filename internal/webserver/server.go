// Package webserver hosts the echo instance shared by the public site and the
// admin back office.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/config"
	"github.com/techbucket/techbucket-web/internal/metrics"
	"github.com/techbucket/techbucket-web/internal/validation"
)

const generatedSecretLength = 64

// sessionSecret returns the configured cookie signing key, or a random one
// when none is set. A random key does not survive a restart.
func sessionSecret(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}
	zap.L().Warn("web.secret is not set, signing sessions with a random key")
	return []byte(random.String(generatedSecretLength))
}

type Server struct {
	cfg   *config.AppConfig
	root  *echo.Echo
	admin *echo.Group
}

// CustomValidator plugs the shared validator into c.Validate. Failures come
// back as a single readable message.
type CustomValidator struct{}

func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Struct(i)
}

func New(cfg *config.AppConfig) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.System.Debug
	e.Renderer = renderer
	e.Validator = &CustomValidator{}
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/healthz" || p == "/metrics" || strings.HasPrefix(p, "/static/")
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote", v.RemoteIP))
			return nil
		},
	}))

	store := sessions.NewCookieStore(sessionSecret(cfg.Web.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.Web.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", StaticHandler())))

	return &Server{cfg: cfg, root: e, admin: e.Group("/admin")}, nil
}

// Echo exposes the underlying instance, mainly to tests.
func (s *Server) Echo() *echo.Echo { return s.root }

// Admin is the /admin route group.
func (s *Server) Admin() *echo.Group { return s.admin }

func (s *Server) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.root.GET(path, h, m...)
}

func (s *Server) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.root.POST(path, h, m...)
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.S().Infof("web server listening on %s", addr)
	err := s.root.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	page := &ErrorPage{Page: Page{Title: http.StatusText(code)}, Code: code, Detail: msg}
	if rerr := c.Render(code, "error", page); rerr != nil {
		zap.L().Error("render error page", zap.Error(rerr))
		_ = c.String(code, msg)
	}
}
