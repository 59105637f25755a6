package crud

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
	"github.com/techbucket/techbucket-web/internal/validation"
)

// fakeStore keeps products in memory and records calls. The function
// fields override default behaviour per test.
type fakeStore struct {
	mu       sync.Mutex
	rows     []domain.Product
	nextID   int64
	lists    int
	payloads []interface{}

	CreateFunc func(payload interface{}) (string, error)
	UpdateFunc func(id int64, payload interface{}) (string, error)
	DeleteFunc func(id int64) (string, error)
}

func (s *fakeStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	return append([]domain.Product(nil), s.rows...), nil
}

func (s *fakeStore) Create(ctx context.Context, payload interface{}) (string, error) {
	s.payloads = append(s.payloads, payload)
	if s.CreateFunc != nil {
		return s.CreateFunc(payload)
	}
	s.nextID++
	s.rows = append(s.rows, domain.Product{ID: s.nextID})
	return "Product created successfully", nil
}

func (s *fakeStore) Update(ctx context.Context, id int64, payload interface{}) (string, error) {
	s.payloads = append(s.payloads, payload)
	if s.UpdateFunc != nil {
		return s.UpdateFunc(id, payload)
	}
	return "Product updated successfully", nil
}

func (s *fakeStore) Delete(ctx context.Context, id int64) (string, error) {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(id)
	}
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
		}
	}
	return "Product deleted successfully", nil
}

func newProductManager(store *fakeStore, notify func(domain.Mutation)) *Manager[domain.Product, draft.ProductDraft] {
	return NewManager(Config[domain.Product, draft.ProductDraft]{
		Kind:     domain.KindProduct,
		Store:    store,
		Defaults: draft.NewProduct,
		ToDraft:  draft.ProductFrom,
		Identity: domain.Product.Identity,
		Notify:   notify,
	})
}

func fillProduct(d *draft.ProductDraft) {
	d.Name = "Test Switch"
	d.BrandID = "3"
	d.CategoryID = "1"
	d.Price = "199.99"
	d.Specifications = draft.NewSubList("10 ports", "")
}

func TestCreateSuccessReturnsToIdleWithOneRefetch(t *testing.T) {
	store := &fakeStore{}
	var events []domain.Mutation
	m := newProductManager(store, func(ev domain.Mutation) { events = append(events, ev) })
	ctx := context.Background()

	if err := m.Load(ctx); err != nil {
		t.Fatal(err)
	}
	before := len(m.View().Rows())
	listsBefore := store.lists

	m.New()
	fillProduct(m.Editor().Draft())
	msg, err := m.Submit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Product created successfully" {
		t.Errorf("message = %q", msg)
	}
	if store.lists-listsBefore != 1 {
		t.Errorf("expected exactly one re-fetch, got %d", store.lists-listsBefore)
	}
	if m.Editor().Mode() != draft.Idle {
		t.Errorf("editor mode = %v", m.Editor().Mode())
	}
	if got := len(m.View().Rows()); got != before+1 {
		t.Errorf("list has %d rows, want %d", got, before+1)
	}
	if len(events) != 1 || events[0].Action != domain.ActionCreate || events[0].Kind != domain.KindProduct {
		t.Errorf("unexpected mutations %+v", events)
	}

	body, _ := jsonOf(t, store.payloads[0])
	if !reflect.DeepEqual(body["specifications"], []interface{}{"10 ports"}) {
		t.Errorf("blank specification not dropped: %v", body["specifications"])
	}
}

func TestFailedSubmitKeepsDraft(t *testing.T) {
	store := &fakeStore{
		CreateFunc: func(interface{}) (string, error) {
			return "", &apiclient.Failure{Kind: apiclient.Application, Status: 400, Message: "Product already exists"}
		},
	}
	m := newProductManager(store, nil)
	ctx := context.Background()
	_ = m.Load(ctx)
	lists := store.lists

	m.New()
	fillProduct(m.Editor().Draft())
	want := *m.Editor().Draft()

	_, err := m.Submit(ctx)
	if got := apiclient.Message(err, "Error saving product"); got != "Product already exists" {
		t.Fatalf("message = %q", got)
	}
	if m.Editor().Mode() != draft.Creating {
		t.Errorf("editor should stay open, mode = %v", m.Editor().Mode())
	}
	if !reflect.DeepEqual(*m.Editor().Draft(), want) {
		t.Error("draft changed after failed submit")
	}
	if store.lists != lists {
		t.Error("failed submit must not re-fetch")
	}
}

func TestValidationFailureSkipsNetwork(t *testing.T) {
	store := &fakeStore{}
	m := newProductManager(store, nil)
	m.New()
	m.Editor().Draft().Name = "Only a name"

	_, err := m.Submit(context.Background())
	if !validation.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.payloads) != 0 {
		t.Error("no request should be made")
	}
}

func TestEditUsesUpdate(t *testing.T) {
	price := 10.0
	store := &fakeStore{rows: []domain.Product{{ID: 5, Name: "Old", BrandID: 1, CategoryID: 1, Price: &price}}}
	var updated int64
	store.UpdateFunc = func(id int64, payload interface{}) (string, error) {
		updated = id
		return "ok", nil
	}
	m := newProductManager(store, nil)
	ctx := context.Background()
	_ = m.Load(ctx)

	if err := m.Edit(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := m.Edit(5); err != nil {
		t.Fatal(err)
	}
	if m.Editor().Draft().Name != "Old" || m.Editor().Draft().Price != "10" {
		t.Errorf("draft not copied from record: %+v", m.Editor().Draft())
	}
	m.Editor().Draft().Name = "New"
	if _, err := m.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	if updated != 5 || len(store.payloads) != 1 {
		t.Errorf("expected update of 5, got %d", updated)
	}
}

func TestDeleteRefetchesOnce(t *testing.T) {
	store := &fakeStore{rows: []domain.Product{{ID: 1}, {ID: 2}}}
	m := newProductManager(store, nil)
	ctx := context.Background()
	_ = m.Load(ctx)
	lists := store.lists

	if _, err := m.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if store.lists-lists != 1 || len(m.View().Rows()) != 1 {
		t.Errorf("unexpected state after delete: lists=%d rows=%d", store.lists-lists, len(m.View().Rows()))
	}

	store.DeleteFunc = func(int64) (string, error) { return "", errors.New("boom") }
	if _, err := m.Delete(ctx, 2); err == nil {
		t.Fatal("expected error")
	}
	if store.lists-lists != 1 {
		t.Error("failed delete must not re-fetch")
	}
}

func TestFetchAllKeepsGoingOnFailure(t *testing.T) {
	ok := NewView[domain.Brand](domain.KindBrand, func(context.Context) ([]domain.Brand, error) {
		return []domain.Brand{{ID: 1, Name: "Cisco"}}, nil
	})
	bad := NewView[domain.Category](domain.KindCategory, func(context.Context) ([]domain.Category, error) {
		return nil, errors.New("unavailable")
	})
	err := FetchAll(context.Background(), ok, bad)
	if err == nil {
		t.Fatal("expected combined error")
	}
	if len(ok.Rows()) != 1 || !ok.Loaded() {
		t.Error("healthy view should populate")
	}
	if !bad.Loaded() || bad.Err() == nil || len(bad.Rows()) != 0 {
		t.Error("failed view should finish loading with an error and no rows")
	}
}

func TestRefreshFailureKeepsPreviousRows(t *testing.T) {
	fail := false
	v := NewView[domain.Brand](domain.KindBrand, func(context.Context) ([]domain.Brand, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []domain.Brand{{ID: 1}}, nil
	})
	_ = v.Refresh(context.Background())
	fail = true
	_ = v.Refresh(context.Background())
	if len(v.Rows()) != 1 || v.Fetches() != 2 {
		t.Errorf("rows=%d fetches=%d", len(v.Rows()), v.Fetches())
	}
}
