package handler

import (
	"bufio"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

const multipartMemory = 8 << 20

// parseUpload reads a multipart form capped at limit bytes. A missing file
// yields a nil upload. The returned close func must run after the upload
// has been forwarded.
func parseUpload(w http.ResponseWriter, r *http.Request, field string, limit int64) (*domain.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	file, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}

		return nil, nil, fmt.Errorf("read form file %s: %w", field, err)
	}

	up, err := newUpload(file, hdr)
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	return up, func() { file.Close() }, nil
}

// newUpload sniffs the content type when the browser did not send a useful one.
func newUpload(file multipart.File, hdr *multipart.FileHeader) (*domain.Upload, error) {
	ct := hdr.Header.Get("Content-Type")
	body := bufio.NewReaderSize(file, 512)

	if ct == "" || ct == "application/octet-stream" {
		head, err := body.Peek(512)
		if err != nil && len(head) == 0 {
			return nil, fmt.Errorf("sniff %s: %w", hdr.Filename, err)
		}

		ct = http.DetectContentType(head)
	}

	return &domain.Upload{
		Filename:    hdr.Filename,
		ContentType: ct,
		Size:        hdr.Size,
		Body:        body,
	}, nil
}

// uploadFailed answers a form that could not be read. It reports whether
// a response was written.
func uploadFailed(w http.ResponseWriter, err error) bool {
	var tooBig *http.MaxBytesError
	switch {
	case err == nil:
		return false
	case errors.As(err, &tooBig):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "El archivo es demasiado grande.", Field: "archivo"})
	default:
		writeError(w, http.StatusBadRequest, "Formulario inválido.")
	}

	return true
}
