package apiclient

import (
	"context"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/techbucket/techbucket-web/internal/domain"
)

type dashboardBody struct {
	Stats          map[string]interface{} `json:"stats"`
	RecentActivity struct {
		Quotes    []domain.QuoteRequest `json:"quotes"`
		Support   []domain.SupportCase  `json:"support"`
		Inquiries []domain.Inquiry      `json:"inquiries"`
	} `json:"recent_activity"`
}

// Dashboard reads the landing page counters and recent leads. Counters
// arrive as loose JSON numbers and are decoded weakly.
func (c *Client) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	var (
		body dashboardBody
		out  domain.Dashboard
	)
	if _, err := c.callTop(ctx, "admin.dashboard", http.MethodGet, "/admin/dashboard", nil, &body); err != nil {
		return out, err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out.Stats,
	})
	if err != nil {
		return out, errors.Wrap(err, "dashboard decoder")
	}
	if err := dec.Decode(body.Stats); err != nil {
		return out, &Failure{Kind: Decode, Endpoint: "admin.dashboard", Err: errors.Wrap(err, "decode stats")}
	}
	out.RecentQuotes = body.RecentActivity.Quotes
	out.RecentSupport = body.RecentActivity.Support
	out.RecentInquiry = body.RecentActivity.Inquiries
	return out, nil
}
