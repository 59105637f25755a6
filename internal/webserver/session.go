package webserver

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	AdminSession = "techbucket_admin"
	SiteSession  = "techbucket_site"
)

func getSession(name string, c echo.Context) *sessions.Session {
	sess, _ := session.Get(name, c)
	return sess
}

// SessionString reads a string value from the named cookie session.
func SessionString(c echo.Context, name, key string) string {
	sess := getSession(name, c)
	if sess == nil {
		return ""
	}
	v, _ := sess.Values[key].(string)
	return v
}

// SetSessionString stores value under key and writes the cookie.
func SetSessionString(c echo.Context, name, key, value string) error {
	sess := getSession(name, c)
	if sess == nil {
		return nil
	}
	sess.Values[key] = value
	return sess.Save(c.Request(), c.Response())
}

// ClearSession expires the named session cookie.
func ClearSession(c echo.Context, name string) error {
	sess := getSession(name, c)
	if sess == nil {
		return nil
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// AddFlash queues a one shot value read back by Flash.
func AddFlash(c echo.Context, name, key, value string) error {
	sess := getSession(name, c)
	if sess == nil {
		return nil
	}
	sess.AddFlash(value, key)
	return sess.Save(c.Request(), c.Response())
}

// Flash pops the first value queued under key.
func Flash(c echo.Context, name, key string) string {
	sess := getSession(name, c)
	if sess == nil {
		return ""
	}
	flashes := sess.Flashes(key)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	v, _ := flashes[0].(string)
	return v
}
