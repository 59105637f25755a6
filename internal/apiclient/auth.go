package apiclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// AuthStatus is the check-auth answer. It carries no success flag.
type AuthStatus struct {
	Authenticated bool              `json:"authenticated"`
	Admin         *domain.AdminUser `json:"admin"`
}

// CheckAuth asks the backend whether the jar's session cookie is valid.
func (c *Client) CheckAuth(ctx context.Context) (AuthStatus, error) {
	const endpoint = "auth.check"
	var st AuthStatus
	raw, status, err := c.exchange(ctx, endpoint, http.MethodGet, "/admin/check-auth", nil)
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		ferr := &Failure{Kind: Decode, Endpoint: endpoint, Status: status, Err: errors.Wrap(err, "decode check-auth")}
		c.finish(endpoint, http.MethodGet, ferr)
		return st, ferr
	}
	c.finish(endpoint, http.MethodGet, nil)
	return st, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Admin *domain.AdminUser `json:"admin"`
}

// Login establishes a backend session; the cookie lands in the jar.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	const endpoint = "auth.login"
	var resp loginResponse
	if _, err := c.callTop(ctx, endpoint, http.MethodPost, "/admin/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.Admin, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, "auth.logout", http.MethodPost, "/admin/logout", nil, nil)
	return err
}

// ChangePassword returns the backend confirmation message.
func (c *Client) ChangePassword(ctx context.Context, req domain.PasswordChange) (string, error) {
	env, err := c.call(ctx, "settings.password", http.MethodPost, "/admin/change-password", req, nil)
	return env.Message, err
}

func (c *Client) SaveEmailSettings(ctx context.Context, s domain.EmailSettings) (string, error) {
	env, err := c.call(ctx, "settings.email", http.MethodPost, "/admin/email-settings", s, nil)
	return env.Message, err
}
