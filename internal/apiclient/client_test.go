package apiclient

import (
	"context"
	"net/http/cookiejar"
	"strconv"
	"testing"
	"time"

	"github.com/techbucket/techbucket-web/internal/apiclient/apitest"
	"github.com/techbucket/techbucket-web/internal/domain"
)

func newTestClient(t *testing.T) (*Client, *apitest.Backend) {
	t.Helper()
	backend := apitest.NewBackend()
	t.Cleanup(backend.Close)
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(Config{BaseURL: backend.URL(), Timeout: 5 * time.Second}, jar), backend
}

func login(t *testing.T, c *Client) {
	t.Helper()
	if _, err := c.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestCheckAuthAndLogin(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	st, err := c.CheckAuth(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Authenticated {
		t.Fatal("fresh client should not be authenticated")
	}

	_, err = c.Login(ctx, "admin", "wrong")
	if got := Message(err, "Login failed"); got != "Invalid credentials" {
		t.Fatalf("login error message = %q", got)
	}

	admin, err := c.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	if admin == nil || admin.Username != "admin" {
		t.Fatalf("unexpected admin %+v", admin)
	}
	st, err = c.CheckAuth(ctx)
	if err != nil || !st.Authenticated {
		t.Fatalf("expected authenticated after login, got %+v %v", st, err)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	st, _ = c.CheckAuth(ctx)
	if st.Authenticated {
		t.Fatal("expected logout to clear session")
	}
}

func TestUnauthorizedHook(t *testing.T) {
	c, _ := newTestClient(t)
	called := 0
	c.OnUnauthorized = func() { called++ }

	_, err := NewCollection[domain.Brand](c, domain.KindBrand).List(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected 401 failure, got %v", err)
	}
	if called != 1 {
		t.Fatalf("hook called %d times", called)
	}
}

func TestCollectionCRUD(t *testing.T) {
	c, backend := newTestClient(t)
	login(t, c)
	ctx := context.Background()
	backend.Seed("brands", map[string]interface{}{"id": 3, "name": "Cisco", "is_active": true})
	backend.Seed("categories", map[string]interface{}{"id": 1, "name": "Networking", "is_active": true})

	products := NewCollection[domain.Product](c, domain.KindProduct)
	rows, err := products.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", rows)
	}

	price := 199.99
	if _, err := products.Create(ctx, map[string]interface{}{
		"name": "Test Switch", "brand_id": 3, "category_id": 1, "price": price,
		"specifications": []string{"10 ports"},
	}); err != nil {
		t.Fatal(err)
	}
	rows, _ = products.List(ctx)
	if len(rows) != 1 {
		t.Fatalf("expected 1 product, got %d", len(rows))
	}
	p := rows[0]
	if p.BrandName() != "Cisco" || p.CategoryName() != "Networking" {
		t.Errorf("references not resolved: %+v", p)
	}
	if p.Price == nil || *p.Price != price {
		t.Errorf("price = %v", p.Price)
	}

	if _, err := products.Update(ctx, p.ID, map[string]interface{}{"name": "Renamed"}); err != nil {
		t.Fatal(err)
	}
	rows, _ = products.List(ctx)
	if rows[0].Name != "Renamed" {
		t.Errorf("name = %q", rows[0].Name)
	}

	if _, err := products.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if backend.Count("DELETE", "/admin/products/"+itoa(p.ID)) != 1 {
		t.Error("expected a single delete call")
	}
	rows, _ = products.List(ctx)
	if len(rows) != 0 {
		t.Errorf("expected product removed, %d left", len(rows))
	}
}

func TestUpdateStatusOmitsNilNotes(t *testing.T) {
	c, backend := newTestClient(t)
	login(t, c)
	ctx := context.Background()
	backend.Seed("registrations", map[string]interface{}{"id": 7, "name": "Ann", "status": "pending"})
	backend.Seed("quotes", map[string]interface{}{"id": 8, "name": "Bob", "status": "pending"})

	regs := NewCollection[domain.EventRegistration](c, domain.KindRegistration)
	if _, err := regs.UpdateStatus(ctx, 7, StatusUpdate{Status: "confirmed"}); err != nil {
		t.Fatal(err)
	}
	notes := "Called back"
	quotes := NewCollection[domain.QuoteRequest](c, domain.KindQuote)
	if _, err := quotes.UpdateStatus(ctx, 8, StatusUpdate{Status: "responded", AdminNotes: &notes}); err != nil {
		t.Fatal(err)
	}

	for _, r := range backend.Requests() {
		switch r.Path {
		case "/admin/registrations/7":
			if _, ok := r.Body["admin_notes"]; ok {
				t.Error("registration update must not carry admin_notes")
			}
		case "/admin/quotes/8":
			if r.Body["admin_notes"] != notes || r.Body["status"] != "responded" {
				t.Errorf("unexpected quote body %v", r.Body)
			}
		}
	}
}

func TestSubmitLeads(t *testing.T) {
	c, backend := newTestClient(t)
	ctx := context.Background()

	ack, err := c.SubmitQuote(ctx, domain.QuoteSubmission{Name: "Ann", Contact: "123", OfficeEmail: "ann@x.io", ProductName: "Switch", Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if ack.ID == 0 || ack.Message == "" {
		t.Fatalf("unexpected ack %+v", ack)
	}
	rows := backend.Rows("quotes")
	if len(rows) != 1 || rows[0]["office_email"] != "ann@x.io" {
		t.Fatalf("unexpected stored quote %v", rows)
	}

	backend.Fail("POST", "/inquiry", "Mail server down")
	_, err = c.SubmitInquiry(ctx, domain.InquirySubmission{Name: "Ann"})
	if got := Message(err, "generic"); got != "Mail server down" {
		t.Fatalf("message = %q", got)
	}
}

func TestTransportFailure(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1/api", Timeout: time.Second}, nil)
	_, err := c.SubmitSupportCase(context.Background(), domain.SupportSubmission{Name: "x"})
	if !IsTransport(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if got := Message(err, "Network error. Please try again."); got != "Network error. Please try again." {
		t.Fatalf("got %q", got)
	}
}

func TestDashboard(t *testing.T) {
	c, backend := newTestClient(t)
	login(t, c)
	backend.Seed("quotes",
		map[string]interface{}{"name": "A", "status": "pending"},
		map[string]interface{}{"name": "B", "status": "closed"},
	)
	backend.Seed("products", map[string]interface{}{"name": "P"})

	d, err := c.Dashboard(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if d.Stats.PendingQuotes != 1 || d.Stats.TotalProducts != 1 {
		t.Errorf("unexpected stats %+v", d.Stats)
	}
	if len(d.RecentQuotes) != 2 || d.RecentQuotes[0].Name != "B" {
		t.Errorf("recent quotes should be newest first: %+v", d.RecentQuotes)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
