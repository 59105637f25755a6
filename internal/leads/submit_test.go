package leads

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/validation"
)

type fakeAPI struct {
	calls  int
	err    error
	quotes []domain.QuoteSubmission
	regs   []domain.RegistrationSubmission
}

func (f *fakeAPI) ack() (apiclient.Ack, error) {
	f.calls++
	if f.err != nil {
		return apiclient.Ack{}, f.err
	}
	return apiclient.Ack{Message: "Submitted successfully", ID: 42}, nil
}

func (f *fakeAPI) SubmitQuote(_ context.Context, q domain.QuoteSubmission) (apiclient.Ack, error) {
	f.quotes = append(f.quotes, q)
	return f.ack()
}

func (f *fakeAPI) SubmitSupportCase(context.Context, domain.SupportSubmission) (apiclient.Ack, error) {
	return f.ack()
}

func (f *fakeAPI) SubmitInquiry(context.Context, domain.InquirySubmission) (apiclient.Ack, error) {
	return f.ack()
}

func (f *fakeAPI) SubmitRegistration(_ context.Context, r domain.RegistrationSubmission) (apiclient.Ack, error) {
	f.regs = append(f.regs, r)
	return f.ack()
}

func newSubmitter(t *testing.T, api API) *Submitter {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSubmitter(api, node, 0)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func validQuote() QuoteForm {
	f := NewQuoteForm("Cisco Catalyst 9300 Series")
	f.Name = "Ann"
	f.Contact = "9800000000"
	f.OfficeEmail = "ann@example.com"
	return f
}

func TestQuoteZeroQuantityRejectedWithoutNetwork(t *testing.T) {
	api := &fakeAPI{}
	s := newSubmitter(t, api)
	f := validQuote()
	f.Quantity = 0

	_, err := s.SubmitQuote(context.Background(), f)
	if !validation.IsValidation(err) || err.Error() != "Quantity must be at least 1" {
		t.Fatalf("got %v", err)
	}
	if api.calls != 0 {
		t.Error("no request may be sent")
	}
}

func TestQuoteReceiptUsesServerID(t *testing.T) {
	api := &fakeAPI{}
	s := newSubmitter(t, api)
	f := validQuote()
	f.Quantity = 3

	r, err := s.SubmitQuote(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if r.Reference != "42" || r.Kind != domain.KindQuote {
		t.Errorf("unexpected receipt %+v", r)
	}
	if api.quotes[0].Quantity != 3 || api.quotes[0].ProductName != "Cisco Catalyst 9300 Series" {
		t.Errorf("unexpected submission %+v", api.quotes[0])
	}
	now := s.now()
	if !r.Active(now) || r.Active(now.Add(DefaultHold)) || r.Remaining(now) != 3 {
		t.Errorf("receipt should be shown for %v", DefaultHold)
	}
}

func TestDisplayReferences(t *testing.T) {
	api := &fakeAPI{}
	s := newSubmitter(t, api)
	ctx := context.Background()

	support := NewSupportForm()
	support.Name, support.OrganizationName, support.Contact = "A", "Org", "1"
	support.OrganizationEmail, support.IssueType = "it@org.np", string(domain.IssueNetwork)
	support.Subject, support.Description = "Down", "All links down"

	inquiry := InquiryForm{Name: "A", OrganizationName: "Org", Contact: "1", OrganizationEmail: "a@org.np", Subject: "Hi", Message: "Hello"}
	reg := RegistrationForm{Name: "A", Contact: "1", Email: "a@org.np"}
	ev := domain.PublicEvent{ID: 1, Title: "Network Security Workshop 2025", Date: "March 15, 2025", Time: "9:00 AM - 5:00 PM", Price: "Free"}

	tests := []struct {
		name    string
		submit  func() (Receipt, error)
		pattern string
	}{
		{"support", func() (Receipt, error) { return s.SubmitSupportCase(ctx, support) }, `^#TB\d{4}$`},
		{"inquiry", func() (Receipt, error) { return s.SubmitInquiry(ctx, inquiry) }, `^#INQ\d{4}$`},
		{"registration", func() (Receipt, error) { return s.SubmitRegistration(ctx, ev, reg) }, `^#EVT\d{4}$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.submit()
			if err != nil {
				t.Fatal(err)
			}
			if !regexp.MustCompile(tt.pattern).MatchString(r.Reference) {
				t.Errorf("reference %q does not match %s", r.Reference, tt.pattern)
			}
		})
	}
	if got := api.regs[0]; got.EventName != ev.Title || got.EventPrice != "Free" || got.EventDate != ev.Date {
		t.Errorf("event details not captured: %+v", got)
	}
}

func TestSubmitFailureKeepsServerMessage(t *testing.T) {
	api := &fakeAPI{err: &apiclient.Failure{Kind: apiclient.Application, Message: "Failed to submit quote request"}}
	s := newSubmitter(t, api)
	_, err := s.SubmitQuote(context.Background(), validQuote())
	if got := apiclient.Message(err, "Network error. Please try again."); got != "Failed to submit quote request" {
		t.Fatalf("got %q", got)
	}
}

func TestSupportPriorityDefault(t *testing.T) {
	if NewSupportForm().Priority != "Medium" {
		t.Error("priority defaults to Medium")
	}
}

func TestReceiptEncodeRoundTrip(t *testing.T) {
	r := Receipt{Kind: domain.KindInquiry, Reference: "#INQ0001", Until: time.Unix(100, 0).UTC()}
	got, err := DecodeReceipt(r.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if got.Reference != r.Reference || !got.Until.Equal(r.Until) {
		t.Errorf("got %+v", got)
	}
	if _, err := DecodeReceipt("{"); err == nil {
		t.Error("expected decode error")
	}
}
