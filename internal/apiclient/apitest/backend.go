// Package apitest provides an in-memory stand-in for the REST backend,
// served over httptest, for use in package tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const sessionCookie = "session"

// Request is one call seen by the backend.
type Request struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// Backend emulates the admin and public endpoints. Records are stored as
// loose JSON objects so tests can assert on exact payloads.
type Backend struct {
	Server   *httptest.Server
	Username string
	Password string

	mu          sync.Mutex
	nextID      int64
	collections map[string][]map[string]interface{}
	failures    map[string]string
	requests    []Request
	revoked     bool
}

var collections = []string{
	"products", "brands", "categories", "services", "events",
	"quotes", "support", "inquiries", "registrations",
}

func NewBackend() *Backend {
	b := &Backend{
		Username:    "admin",
		Password:    "admin123",
		nextID:      100,
		collections: map[string][]map[string]interface{}{},
		failures:    map[string]string{},
	}
	for _, c := range collections {
		b.collections[c] = []map[string]interface{}{}
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

// URL is the API base, comparable to https://host/api.
func (b *Backend) URL() string { return b.Server.URL + "/api" }

func (b *Backend) Close() { b.Server.Close() }

// Seed appends rows to a collection. Rows without an id get one.
func (b *Backend) Seed(collection string, rows ...map[string]interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range rows {
		if _, ok := r["id"]; !ok {
			b.nextID++
			r["id"] = b.nextID
		}
		b.collections[collection] = append(b.collections[collection], r)
	}
}

// Rows returns a copy of a collection.
func (b *Backend) Rows(collection string) []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]interface{}(nil), b.collections[collection]...)
}

// Fail makes the next call to method+path answer success: false with message.
func (b *Backend) Fail(method, path, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = message
}

// Revoke signs out every session, as when the backend restarts. The next
// successful login clears it.
func (b *Backend) Revoke() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked = true
}

// Requests returns every call seen so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Count returns how many calls matched method and path.
func (b *Backend) Count(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	var body map[string]interface{}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	b.mu.Lock()
	b.requests = append(b.requests, Request{Method: r.Method, Path: path, Body: body})
	key := r.Method + " " + path
	msg, failing := b.failures[key]
	delete(b.failures, key)
	revoked := b.revoked
	b.mu.Unlock()

	if failing {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": msg})
		return
	}

	switch {
	case path == "/admin/check-auth":
		b.checkAuth(w, r, revoked)
	case path == "/admin/login":
		b.login(w, body)
	case path == "/admin/logout":
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Logged out successfully"})
	case strings.HasPrefix(path, "/admin/"):
		if revoked || !authenticated(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Authentication required"})
			return
		}
		b.admin(w, r.Method, strings.TrimPrefix(path, "/admin/"), body)
	case r.Method == http.MethodPost:
		b.public(w, path, body)
	default:
		http.NotFound(w, r)
	}
}

func authenticated(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	return err == nil && c.Value == "ok"
}

func (b *Backend) checkAuth(w http.ResponseWriter, r *http.Request, revoked bool) {
	if revoked || !authenticated(r) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"admin":         map[string]interface{}{"id": 1, "username": b.Username},
	})
}

func (b *Backend) login(w http.ResponseWriter, body map[string]interface{}) {
	if body["username"] != b.Username || body["password"] != b.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "Invalid credentials"})
		return
	}
	b.mu.Lock()
	b.revoked = false
	b.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "ok", Path: "/"})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"admin":   map[string]interface{}{"id": 1, "username": b.Username},
	})
}

func (b *Backend) admin(w http.ResponseWriter, method, rest string, body map[string]interface{}) {
	parts := strings.Split(rest, "/")
	name := parts[0]

	switch name {
	case "dashboard":
		b.dashboard(w)
		return
	case "change-password":
		if body["current_password"] != b.Password {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "Current password is incorrect"})
			return
		}
		b.mu.Lock()
		b.Password, _ = body["new_password"].(string)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Password changed successfully"})
		return
	case "email-settings":
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Email settings saved successfully"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	rows, ok := b.collections[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "Not found"})
		return
	}

	if len(parts) == 1 {
		switch method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": rows})
		case http.MethodPost:
			b.nextID++
			body["id"] = b.nextID
			b.resolve(name, body)
			b.collections[name] = append(rows, body)
			writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "Created successfully", "data": body})
		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "Method not allowed"})
		}
		return
	}

	id, _ := strconv.ParseInt(parts[1], 10, 64)
	idx := -1
	for i, row := range rows {
		if toInt64(row["id"]) == id {
			idx = i
		}
	}
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "Record not found"})
		return
	}
	switch method {
	case http.MethodPut:
		for k, v := range body {
			rows[idx][k] = v
		}
		b.resolve(name, rows[idx])
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Updated successfully", "data": rows[idx]})
	case http.MethodDelete:
		b.collections[name] = append(rows[:idx:idx], rows[idx+1:]...)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Deleted successfully"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "Method not allowed"})
	}
}

// resolve fills the display references of a product from the brand and
// category collections. b.mu must be held.
func (b *Backend) resolve(collection string, row map[string]interface{}) {
	if collection != "products" {
		return
	}
	lookup := func(from string, id interface{}) interface{} {
		for _, r := range b.collections[from] {
			if toInt64(r["id"]) == toInt64(id) {
				return map[string]interface{}{"id": r["id"], "name": r["name"]}
			}
		}
		return nil
	}
	row["brand"] = lookup("brands", row["brand_id"])
	row["category"] = lookup("categories", row["category_id"])
}

func (b *Backend) dashboard(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := func(name, field, value string) int {
		n := 0
		for _, r := range b.collections[name] {
			if field == "" || r[field] == value {
				n++
			}
		}
		return n
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats": map[string]interface{}{
			"total_products":       count("products", "", ""),
			"total_brands":         count("brands", "", ""),
			"total_categories":     count("categories", "", ""),
			"total_services":       count("services", "", ""),
			"total_events":         count("events", "", ""),
			"pending_quotes":       count("quotes", "status", "pending"),
			"open_support_cases":   count("support", "status", "open"),
			"unread_inquiries":     count("inquiries", "status", "new"),
			"recent_registrations": count("registrations", "", ""),
		},
		"recent_activity": map[string]interface{}{
			"quotes":    latest(b.collections["quotes"]),
			"support":   latest(b.collections["support"]),
			"inquiries": latest(b.collections["inquiries"]),
		},
	})
}

var publicRoutes = map[string]struct {
	collection string
	idKey      string
	status     string
	message    string
}{
	"/quote-request":      {"quotes", "quote_id", "pending", "Quote request submitted successfully"},
	"/support-case":       {"support", "case_id", "open", "Support case submitted successfully"},
	"/inquiry":            {"inquiries", "inquiry_id", "new", "Inquiry submitted successfully"},
	"/event-registration": {"registrations", "registration_id", "pending", "Event registration submitted successfully"},
}

func (b *Backend) public(w http.ResponseWriter, path string, body map[string]interface{}) {
	route, ok := publicRoutes[path]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Not found"})
		return
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	row := map[string]interface{}{"id": id, "status": route.status}
	for k, v := range body {
		row[snake(k)] = v
	}
	b.collections[route.collection] = append(b.collections[route.collection], row)
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": route.message, route.idKey: id})
}

func latest(rows []map[string]interface{}) []map[string]interface{} {
	out := append([]map[string]interface{}(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return toInt64(out[i]["id"]) > toInt64(out[j]["id"]) })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func snake(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('_')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
