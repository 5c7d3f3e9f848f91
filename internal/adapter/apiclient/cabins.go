package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) ListCabins(ctx context.Context) ([]domain.Cabin, error) {
	var out []domain.Cabin
	if err := c.Do(ctx, http.MethodGet, "/api/cabanas", nil, "", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetCabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	var out domain.Cabin
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/cabanas/%d", id), nil, "", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) SearchAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Cabin, error) {
	params := url.Values{}
	params.Set("desde", q.From.String())
	params.Set("hasta", q.To.String())
	if q.Guests > 0 {
		params.Set("huespedes", strconv.Itoa(q.Guests))
	}

	var out []domain.Cabin
	if err := c.Do(ctx, http.MethodGet, "/api/disponibilidad?"+params.Encode(), nil, "", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateCabin(ctx context.Context, token string, in domain.CabinInput) (*domain.Cabin, error) {
	var out domain.Cabin
	if err := c.Do(ctx, http.MethodPost, "/api/cabanas", in, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateCabin(ctx context.Context, token string, id int64, in domain.CabinInput) (*domain.Cabin, error) {
	var out domain.Cabin
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/cabanas/%d", id), in, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteCabin(ctx context.Context, token string, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/cabanas/%d", id), nil, token, nil)
}

func (c *Client) ListCabinImages(ctx context.Context, token string, cabinID int64) ([]domain.CabinImage, error) {
	var out []domain.CabinImage
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/api/cabanas/%d/imagenes", cabinID), nil, token, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) UploadCabinImage(ctx context.Context, token string, cabinID int64, file domain.Upload) (*domain.CabinImage, error) {
	form := Multipart{Files: map[string]domain.Upload{"imagen": file}}

	var out domain.CabinImage
	if err := c.DoMultipart(ctx, http.MethodPost, fmt.Sprintf("/api/cabanas/%d/imagenes", cabinID), form, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteCabinImage(ctx context.Context, token string, cabinID, imageID int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/cabanas/%d/imagenes/%d", cabinID, imageID), nil, token, nil)
}

func (c *Client) SetCabinCover(ctx context.Context, token string, cabinID, imageID int64) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/cabanas/%d/imagenes/%d/portada", cabinID, imageID), nil, token, nil)
}
