// Package apiclient talks to the remote booking REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 20 << 20

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient is used by tests to point the client at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Multipart is a form with plain fields and at most one file per field name.
type Multipart struct {
	Fields map[string]string
	Files  map[string]domain.Upload
}

// Do sends a JSON request. A nil body sends no payload; out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader, token)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

// DoMultipart leaves the content type to the multipart writer so the boundary
// is always the one actually used in the body.
func (c *Client) DoMultipart(ctx context.Context, method, path string, form Multipart, token string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for name, file := range form.Files {
		part, err := writer.CreateFormFile(name, file.Filename)
		if err != nil {
			return fmt.Errorf("create form file %s: %w", name, err)
		}

		if _, err := io.Copy(part, file.Body); err != nil {
			return fmt.Errorf("copy form file %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, &buf, token)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}

// DoRaw returns the undecoded body, used for rendered documents.
func (c *Client) DoRaw(ctx context.Context, method, path string, token string) (*domain.Document, error) {
	req, err := c.newRequest(ctx, method, path, nil, token)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/pdf, application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, data)
	}

	return &domain.Document{ContentType: resp.Header.Get("Content-Type"), Body: data}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	req.Header.Set(middleware.RequestIDHeader, reqID)
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, data)
	}

	return decode(data, out)
}

// decode treats an empty body as an empty object and unwraps {"data": ...}.
func decode(data []byte, out any) error {
	data = bytes.TrimSpace(data)
	if out == nil || len(data) == 0 {
		return nil
	}

	if data[0] == '{' {
		if inner := gjson.GetBytes(data, "data"); inner.Exists() && (inner.IsObject() || inner.IsArray()) {
			data = []byte(inner.Raw)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func apiError(status int, body []byte) *ports.APIError {
	return &ports.APIError{Status: status, Message: errorMessage(body)}
}

func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ports.FallbackMessage
	}

	for _, key := range []string{"message", "mensaje", "error"} {
		if msg := strings.TrimSpace(gjson.GetBytes(body, key).String()); msg != "" {
			return msg
		}
	}

	var parts []string
	gjson.GetBytes(body, "errors").ForEach(func(_, field gjson.Result) bool {
		if field.IsArray() {
			for _, msg := range field.Array() {
				parts = append(parts, msg.String())
			}
		} else {
			parts = append(parts, field.String())
		}

		return true
	})

	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	return ports.FallbackMessage
}
