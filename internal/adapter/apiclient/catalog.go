package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.Do(ctx, http.MethodGet, "/api/servicios", nil, "", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AdminListServices(ctx context.Context, token string) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.Do(ctx, http.MethodGet, "/api/admin/servicios", nil, token, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateService(ctx context.Context, token string, in domain.ServiceInput) (*domain.Service, error) {
	var out domain.Service
	if err := c.DoMultipart(ctx, http.MethodPost, "/api/admin/servicios", serviceForm(in, false), token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateService posts with a _method override, PHP does not parse multipart PUT bodies.
func (c *Client) UpdateService(ctx context.Context, token string, id int64, in domain.ServiceInput) (*domain.Service, error) {
	var out domain.Service
	path := fmt.Sprintf("/api/admin/servicios/%d", id)
	if err := c.DoMultipart(ctx, http.MethodPost, path, serviceForm(in, true), token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, token string, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/servicios/%d", id), nil, token, nil)
}

func serviceForm(in domain.ServiceInput, update bool) Multipart {
	active := "0"
	if in.Active {
		active = "1"
	}

	form := Multipart{
		Fields: map[string]string{
			"nombre":      in.Name,
			"descripcion": in.Description,
			"precio":      strconv.FormatFloat(in.Price, 'f', -1, 64),
			"categoria":   string(in.Category),
			"activo":      active,
		},
	}

	if update {
		form.Fields["_method"] = http.MethodPut
	}

	if in.Image != nil {
		form.Files = map[string]domain.Upload{"imagen": *in.Image}
	}

	return form
}
