package apiclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/metrics"
)

const DefaultBaseURL = "https://techbucket-api.onrender.com/api"

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the REST backend. Admin clients carry a cookie jar so the
// backend session cookie rides along on every call.
type Client struct {
	baseURL string
	http    *http.Client

	// OnUnauthorized is invoked after any call answered with 401.
	OnUnauthorized func()
}

// New creates a client. jar may be nil for anonymous public calls.
func New(cfg Config, jar http.CookieJar) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Jar: jar, Timeout: cfg.Timeout},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// call performs one request and validates the envelope. endpoint is a
// stable label used for logs and metrics.
func (c *Client) call(ctx context.Context, endpoint, method, path string, body, out interface{}) (envelope, error) {
	raw, status, err := c.exchange(ctx, endpoint, method, path, body)
	if err != nil {
		return envelope{}, err
	}
	env, err := decodeEnvelope(endpoint, status, raw, out)
	c.finish(endpoint, method, err)
	return env, err
}

// callTop is call for endpoints whose payload sits beside the success flag
// instead of under data. The whole body is decoded into top.
func (c *Client) callTop(ctx context.Context, endpoint, method, path string, body, top interface{}) (envelope, error) {
	raw, status, err := c.exchange(ctx, endpoint, method, path, body)
	if err != nil {
		return envelope{}, err
	}
	env, err := decodeEnvelope(endpoint, status, raw, nil)
	if err == nil && top != nil {
		if uerr := json.Unmarshal(raw, top); uerr != nil {
			err = &Failure{Kind: Decode, Endpoint: endpoint, Status: status, Err: errors.Wrap(uerr, "decode body")}
		}
	}
	c.finish(endpoint, method, err)
	return env, err
}

// exchange sends the request and returns the raw body and status code.
func (c *Client) exchange(ctx context.Context, endpoint, method, path string, body interface{}) ([]byte, int, error) {
	var (
		text string
		code int
	)
	start := time.Now()
	df := c.flow(method, c.baseURL+path).WithContext(ctx)
	if body != nil {
		df = df.SetJSON(body)
	}
	err := df.BindBody(&text).Code(&code).Do()
	metrics.ObserveBackendLatency(endpoint, method, time.Since(start))
	if err != nil {
		zap.L().Warn("backend request failed",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.Error(err))
		metrics.CountBackendRequest(endpoint, method, Transport.String())
		return nil, 0, &Failure{Kind: Transport, Endpoint: endpoint, Err: errors.Wrap(err, method+" "+path)}
	}
	if code == http.StatusUnauthorized && c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	return []byte(text), code, nil
}

func (c *Client) finish(endpoint, method string, err error) {
	outcome := "ok"
	var f *Failure
	if errors.As(err, &f) {
		outcome = f.Kind.String()
		zap.L().Debug("backend call unsuccessful",
			zap.String("endpoint", endpoint),
			zap.Int("status", f.Status),
			zap.String("message", f.Message))
	}
	metrics.CountBackendRequest(endpoint, method, outcome)
}

func (c *Client) flow(method, url string) *dataflow.DataFlow {
	g := gout.New(c.http)
	switch method {
	case http.MethodPost:
		return g.POST(url)
	case http.MethodPut:
		return g.PUT(url)
	case http.MethodDelete:
		return g.DELETE(url)
	default:
		return g.GET(url)
	}
}
