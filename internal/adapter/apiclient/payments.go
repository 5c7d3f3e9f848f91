package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (c *Client) UploadReceipt(ctx context.Context, token string, reservationID int64, reference string, file domain.Upload) (*domain.Receipt, error) {
	form := Multipart{
		Fields: map[string]string{
			"reserva_id": strconv.FormatInt(reservationID, 10),
			"referencia": reference,
		},
		Files: map[string]domain.Upload{"archivo": file},
	}

	var out domain.Receipt
	if err := c.DoMultipart(ctx, http.MethodPost, "/api/pagos", form, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ValidateReceipt(ctx context.Context, token string, receiptID int64) (*domain.Receipt, error) {
	var out domain.Receipt
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/pagos/%d/validar", receiptID), nil, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) RejectReceipt(ctx context.Context, token string, receiptID int64) (*domain.Receipt, error) {
	var out domain.Receipt
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/api/pagos/%d/rechazar", receiptID), nil, token, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
