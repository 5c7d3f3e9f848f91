package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) ListGuests(ctx context.Context, token string, reservationID int64) ([]domain.Guest, error) {
	var out []domain.Guest
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/reservas/%d/huespedes", reservationID), nil, token, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AddGuest(ctx context.Context, token string, reservationID int64, in domain.GuestInput) (*domain.Guest, error) {
	var out domain.Guest
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/reservas/%d/huespedes", reservationID), in, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) RemoveGuest(ctx context.Context, token string, guestID int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/huespedes/%d", guestID), nil, token, nil)
}
