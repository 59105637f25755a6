package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/metrics"
	"github.com/techbucket/techbucket-web/internal/validation"
)

// DefaultHold is how long a confirmation stays on screen before the form
// comes back empty.
const DefaultHold = 3 * time.Second

// API is the backend side of lead submission.
type API interface {
	SubmitQuote(ctx context.Context, q domain.QuoteSubmission) (apiclient.Ack, error)
	SubmitSupportCase(ctx context.Context, s domain.SupportSubmission) (apiclient.Ack, error)
	SubmitInquiry(ctx context.Context, i domain.InquirySubmission) (apiclient.Ack, error)
	SubmitRegistration(ctx context.Context, r domain.RegistrationSubmission) (apiclient.Ack, error)
}

// Receipt is the confirmation shown after a successful submission.
type Receipt struct {
	Kind      domain.Kind `json:"kind"`
	Reference string      `json:"reference"`
	Subject   string      `json:"subject"`
	Message   string      `json:"message"`
	Until     time.Time   `json:"until"`
}

// Active reports whether the confirmation should still be displayed.
func (r Receipt) Active(now time.Time) bool { return now.Before(r.Until) }

// Remaining is the display time left, rounded up to whole seconds.
func (r Receipt) Remaining(now time.Time) int {
	d := r.Until.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// Encode serializes the receipt for a flash cookie.
func (r Receipt) Encode() string {
	s, _ := jsoniter.MarshalToString(r)
	return s
}

func DecodeReceipt(s string) (Receipt, error) {
	var r Receipt
	if err := jsoniter.UnmarshalFromString(s, &r); err != nil {
		return r, errors.Wrap(err, "decode receipt")
	}
	return r, nil
}

var prefixes = map[domain.Kind]string{
	domain.KindSupportCase:  "#TB",
	domain.KindRegistration: "#EVT",
	domain.KindInquiry:      "#INQ",
}

// Submitter validates forms and forwards them to the backend.
type Submitter struct {
	api  API
	node *snowflake.Node
	hold time.Duration
	now  func() time.Time
}

func NewSubmitter(api API, node *snowflake.Node, hold time.Duration) *Submitter {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Submitter{api: api, node: node, hold: hold, now: time.Now}
}

// SubmitQuote sends a quote request. The receipt shows the server id.
func (s *Submitter) SubmitQuote(ctx context.Context, f QuoteForm) (Receipt, error) {
	return s.run(ctx, domain.KindQuote, f, func() (apiclient.Ack, error) {
		return s.api.SubmitQuote(ctx, f.submission())
	}, f.ProductName)
}

func (s *Submitter) SubmitSupportCase(ctx context.Context, f SupportForm) (Receipt, error) {
	return s.run(ctx, domain.KindSupportCase, f, func() (apiclient.Ack, error) {
		return s.api.SubmitSupportCase(ctx, f.submission())
	}, f.Subject)
}

func (s *Submitter) SubmitInquiry(ctx context.Context, f InquiryForm) (Receipt, error) {
	return s.run(ctx, domain.KindInquiry, f, func() (apiclient.Ack, error) {
		return s.api.SubmitInquiry(ctx, f.submission())
	}, f.Subject)
}

func (s *Submitter) SubmitRegistration(ctx context.Context, ev domain.PublicEvent, f RegistrationForm) (Receipt, error) {
	return s.run(ctx, domain.KindRegistration, f, func() (apiclient.Ack, error) {
		return s.api.SubmitRegistration(ctx, f.submission(ev))
	}, ev.Title)
}

func (s *Submitter) run(ctx context.Context, kind domain.Kind, form interface{}, send func() (apiclient.Ack, error), subject string) (Receipt, error) {
	if err := validation.Struct(form); err != nil {
		metrics.CountLeadSubmission(string(kind), "invalid")
		return Receipt{}, err
	}
	ack, err := send()
	if err != nil {
		metrics.CountLeadSubmission(string(kind), "failed")
		zap.L().Warn("lead submission failed", zap.String("kind", string(kind)), zap.Error(err))
		return Receipt{}, err
	}
	metrics.CountLeadSubmission(string(kind), "ok")
	zap.L().Info("lead submitted", zap.String("kind", string(kind)), zap.Int64("id", ack.ID))
	return Receipt{
		Kind:      kind,
		Reference: s.reference(kind, ack),
		Subject:   subject,
		Message:   ack.Message,
		Until:     s.now().Add(s.hold),
	}, nil
}

func (s *Submitter) reference(kind domain.Kind, ack apiclient.Ack) string {
	prefix, ok := prefixes[kind]
	if !ok {
		return fmt.Sprintf("%d", ack.ID)
	}
	return fmt.Sprintf("%s%04d", prefix, s.node.Generate().Int64()%10000)
}
