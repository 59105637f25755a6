package workflow

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
)

type fakeLeads[R any] struct {
	rows    []R
	lists   int
	updates []apiclient.StatusUpdate
	ids     []int64
	err     error
}

func (f *fakeLeads[R]) List(context.Context) ([]R, error) {
	f.lists++
	return f.rows, nil
}

func (f *fakeLeads[R]) UpdateStatus(_ context.Context, id int64, upd apiclient.StatusUpdate) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.ids = append(f.ids, id)
	f.updates = append(f.updates, upd)
	return "Quote status updated successfully", nil
}

func TestTransitionSendsNotesAndRefetchesOnce(t *testing.T) {
	store := &fakeLeads[domain.QuoteRequest]{rows: []domain.QuoteRequest{{ID: 3, Status: domain.QuotePending}}}
	var events []domain.Mutation
	c := NewController[domain.QuoteRequest](domain.KindQuote, store, domain.QuoteRequest.Identity,
		func(m domain.Mutation) { events = append(events, m) })
	ctx := context.Background()
	if err := c.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if q, ok := c.Find(3); !ok || q.Status != domain.QuotePending {
		t.Fatalf("unexpected find result %+v %v", q, ok)
	}

	notes := "Sent pricing sheet"
	if _, err := c.Transition(ctx, 3, string(domain.QuoteResponded), &notes); err != nil {
		t.Fatal(err)
	}
	if store.lists != 2 {
		t.Errorf("expected one re-fetch after update, lists=%d", store.lists)
	}
	upd := store.updates[0]
	if upd.Status != "responded" || upd.AdminNotes == nil || *upd.AdminNotes != notes {
		t.Errorf("unexpected update %+v", upd)
	}
	if len(events) != 1 || events[0].Detail != "responded" || events[0].Action != domain.ActionStatus {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestTransitionPassesUnknownStatusThrough(t *testing.T) {
	store := &fakeLeads[domain.Inquiry]{}
	c := NewController[domain.Inquiry](domain.KindInquiry, store, domain.Inquiry.Identity, nil)
	if _, err := c.Transition(context.Background(), 1, "escalated", nil); err != nil {
		t.Fatal(err)
	}
	if store.updates[0].Status != "escalated" {
		t.Error("status should be sent unchanged")
	}
	if _, err := c.Transition(context.Background(), 1, "", nil); err == nil {
		t.Error("empty status is rejected")
	}
}

func TestTransitionFailureDoesNotRefetch(t *testing.T) {
	store := &fakeLeads[domain.SupportCase]{err: &apiclient.Failure{Kind: apiclient.Application, Message: "Case not found"}}
	c := NewController[domain.SupportCase](domain.KindSupportCase, store, domain.SupportCase.Identity, nil)
	_, err := c.Transition(context.Background(), 1, "resolved", nil)
	if apiclient.Message(err, "") != "Case not found" {
		t.Fatalf("got %v", err)
	}
	if store.lists != 0 {
		t.Error("no re-fetch on failure")
	}
	var f *apiclient.Failure
	if !errors.As(err, &f) {
		t.Error("failure type lost")
	}
}

func TestRegistrationsConfirmAndCancelWithoutNotes(t *testing.T) {
	store := &fakeLeads[domain.EventRegistration]{}
	r := Registrations{NewController[domain.EventRegistration](domain.KindRegistration, store, domain.EventRegistration.Identity, nil)}
	ctx := context.Background()
	if _, err := r.Confirm(ctx, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Cancel(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if store.updates[0].Status != "confirmed" || store.updates[1].Status != "cancelled" {
		t.Errorf("unexpected statuses %+v", store.updates)
	}
	for _, u := range store.updates {
		if u.AdminNotes != nil {
			t.Error("registrations never carry notes")
		}
	}
}
