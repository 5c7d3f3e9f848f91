package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

const (
	msgUnexpected = "No se pudo completar la solicitud."
	msgInFlight   = "La acción ya está en curso."
	msgExpired    = "Tu sesión expiró. Inicia sesión nuevamente."
)

type errorResponse struct {
	Error             string `json:"error"`
	Field             string `json:"field,omitempty"`
	NeedsConfirmation bool   `json:"needs_confirmation,omitempty"`
}

type redirectResponse struct {
	Redirect string `json:"redirect"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(dst)
}

// wantsJSON is true for fetch/XHR callers, which get redirects as a JSON body.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}

	return false
}

// redirect sends 303 to browsers and {"redirect": ...} to JSON callers.
func redirect(w http.ResponseWriter, r *http.Request, location, message string, data any) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, redirectResponse{Redirect: location, Message: message, Data: data})
		return
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

// returnPath is the path+query a login should send the user back to.
func returnPath(r *http.Request) string {
	if r.Method != http.MethodGet {
		if ref := r.Header.Get("X-Return-To"); ref != "" {
			return ref
		}

		return services.RouteAccount
	}

	return r.URL.RequestURI()
}

// handleError maps service errors to responses in one place.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *services.ValidationError
		rejected *services.RejectedError
		confirm  *services.ConfirmationRequiredError
		apiErr   *ports.APIError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, services.ErrUnauthenticated):
		redirect(w, r, services.LoginURL(returnPath(r)), msgExpired, nil)
	case errors.Is(err, services.ErrForbidden):
		redirect(w, r, services.RouteAccount, "", nil)
	case errors.As(err, &confirm):
		writeJSON(w, http.StatusConflict, errorResponse{Error: confirm.Message, NeedsConfirmation: true})
	case errors.As(err, &rejected):
		writeError(w, http.StatusConflict, rejected.Message)
	case errors.Is(err, services.ErrInFlight):
		writeError(w, http.StatusConflict, msgInFlight)
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, http.StatusNotFound, "No encontrado.")
	case errors.Is(err, context.Canceled):
		log.Printf("[%s] %s %s: client went away", middleware.GetReqID(r.Context()), r.Method, r.URL.Path)
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		writeError(w, apiErr.Status, apiErr.Message)
	default:
		log.Printf("[%s] %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, err)
		writeError(w, http.StatusBadGateway, msgUnexpected)
	}
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirmar"))
	return ok
}
