package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) OccupancyReport(ctx context.Context, token string, from, to string) (*domain.Document, error) {
	params := url.Values{}
	if from != "" {
		params.Set("desde", from)
	}
	if to != "" {
		params.Set("hasta", to)
	}

	path := "/api/reportes/ocupacion/pdf"
	if qs := params.Encode(); qs != "" {
		path += "?" + qs
	}

	return c.DoRaw(ctx, http.MethodGet, path, token)
}
