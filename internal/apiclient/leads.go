package apiclient

import (
	"context"
	"net/http"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// Ack is the backend answer to a public lead submission.
type Ack struct {
	Message string
	ID      int64
}

type leadAck struct {
	Message        string `json:"message"`
	QuoteID        int64  `json:"quote_id"`
	CaseID         int64  `json:"case_id"`
	InquiryID      int64  `json:"inquiry_id"`
	RegistrationID int64  `json:"registration_id"`
}

func (a leadAck) id() int64 {
	for _, v := range []int64{a.QuoteID, a.CaseID, a.InquiryID, a.RegistrationID} {
		if v != 0 {
			return v
		}
	}
	return 0
}

func (c *Client) submit(ctx context.Context, endpoint, path string, payload interface{}) (Ack, error) {
	var ack leadAck
	if _, err := c.callTop(ctx, endpoint, http.MethodPost, path, payload, &ack); err != nil {
		return Ack{}, err
	}
	return Ack{Message: ack.Message, ID: ack.id()}, nil
}

func (c *Client) SubmitQuote(ctx context.Context, q domain.QuoteSubmission) (Ack, error) {
	return c.submit(ctx, "leads.quote", "/quote-request", q)
}

func (c *Client) SubmitSupportCase(ctx context.Context, s domain.SupportSubmission) (Ack, error) {
	return c.submit(ctx, "leads.support", "/support-case", s)
}

func (c *Client) SubmitInquiry(ctx context.Context, i domain.InquirySubmission) (Ack, error) {
	return c.submit(ctx, "leads.inquiry", "/inquiry", i)
}

func (c *Client) SubmitRegistration(ctx context.Context, r domain.RegistrationSubmission) (Ack, error) {
	return c.submit(ctx, "leads.registration", "/event-registration", r)
}
