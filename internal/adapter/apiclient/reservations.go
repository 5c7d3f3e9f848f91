package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) PreviewReservation(ctx context.Context, token string, p domain.ReservationPayload) (*domain.Preview, error) {
	var out domain.Preview
	if err := c.Do(ctx, http.MethodPost, "/api/reservas/preview", p, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateReservation(ctx context.Context, token string, p domain.ReservationPayload) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.Do(ctx, http.MethodPost, "/api/reservas", p, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) GetReservation(ctx context.Context, token string, id int64) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/reservas/%d", id), nil, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListMyReservations(ctx context.Context, token string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.Do(ctx, http.MethodGet, "/api/mis-reservas", nil, token, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) ListReservations(ctx context.Context, token string, f domain.ReservationFilter) ([]domain.Reservation, error) {
	path := "/api/reservas"
	if qs := filterQuery(f); qs != "" {
		path += "?" + qs
	}

	var out []domain.Reservation
	if err := c.Do(ctx, http.MethodGet, path, nil, token, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) UpdateReservation(ctx context.Context, token string, id int64, patch domain.ReservationPatch) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/reservas/%d", id), patch, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CheckIn(ctx context.Context, token string, id int64) (*domain.Reservation, error) {
	return c.transition(ctx, token, id, "checkin")
}

func (c *Client) CheckOut(ctx context.Context, token string, id int64) (*domain.Reservation, error) {
	return c.transition(ctx, token, id, "checkout")
}

func (c *Client) AddExtras(ctx context.Context, token string, id int64, extras []domain.ExtraLine) (*domain.Reservation, error) {
	body := struct {
		Services []domain.ExtraLine `json:"servicios"`
	}{Services: extras}

	var out domain.Reservation
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/reservas/%d/servicios", id), body, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) transition(ctx context.Context, token string, id int64, action string) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/reservas/%d/%s", id, action), nil, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func filterQuery(f domain.ReservationFilter) string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("estado", string(f.Status))
	}
	if f.From != "" {
		params.Set("desde", f.From)
	}
	if f.To != "" {
		params.Set("hasta", f.To)
	}
	if f.CabinID != 0 {
		params.Set("cabana_id", strconv.FormatInt(f.CabinID, 10))
	}
	if f.Query != "" {
		params.Set("q", f.Query)
	}

	return params.Encode()
}
