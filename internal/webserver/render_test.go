package webserver

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"error", "auth/login", "auth/loading",
		"admin/dashboard", "admin/products", "admin/brands", "admin/categories",
		"admin/services", "admin/events", "admin/quotes", "admin/support",
		"admin/inquiries", "admin/registrations", "admin/settings",
		"site/home", "site/about", "site/products", "site/quote", "site/services",
		"site/support", "site/events", "site/register", "site/contact",
	} {
		if !r.Has(name) {
			t.Errorf("template %s not registered", name)
		}
	}
	if r.Has("layouts/site") || r.Has("partials/flash") {
		t.Error("layouts and partials must not be pages")
	}
}

func TestRenderRefresh(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	page := &ErrorPage{Page: Page{Title: "Gone", Refresh: 3, RefreshURL: "/support"}, Code: 410, Detail: "Expired"}
	if err := r.Render(&buf, "error", page, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`content="3;url=/support"`, "<title>Gone | TechBucket</title>", "Expired"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if err := r.Render(&buf, "nope", page, nil); err == nil {
		t.Error("unknown template rendered")
	}
}

func TestTemplateFuncs(t *testing.T) {
	usd := funcs["usd"].(func(*float64) string)
	price := 1299.5
	zero := 0.0
	if got := usd(nil); got != "Contact for pricing" {
		t.Errorf("usd(nil) = %q", got)
	}
	if got := usd(&zero); got != "Contact for pricing" {
		t.Errorf("usd(0) = %q", got)
	}
	if got := usd(&price); got != "$1299.5" {
		t.Errorf("usd = %q", got)
	}

	npr := funcs["npr"].(func(float64) string)
	if got := npr(0); got != "Free" {
		t.Errorf("npr(0) = %q", got)
	}
	if got := npr(2500); got != "NPR 2500" {
		t.Errorf("npr = %q", got)
	}

	date := funcs["date"].(func(string) string)
	if got := date("2025-02-15"); got != "Feb 15, 2025" {
		t.Errorf("date = %q", got)
	}
	if got := date("soon"); got != "soon" {
		t.Errorf("unparseable date = %q", got)
	}

	fallback := funcs["fallback"].(func(string, string) string)
	if got := fallback("  ", "N/A"); got != "N/A" {
		t.Errorf("fallback = %q", got)
	}
}
