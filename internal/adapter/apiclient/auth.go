package apiclient

import (
	"context"
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var out domain.AuthResult
	if err := c.Do(ctx, http.MethodPost, "/api/login", creds, "", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var out domain.AuthResult
	if err := c.Do(ctx, http.MethodPost, "/api/register", reg, "", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.Do(ctx, http.MethodPost, "/api/logout", nil, token, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	if err := c.Do(ctx, http.MethodGet, "/api/me", nil, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
