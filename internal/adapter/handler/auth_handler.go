package handler

import (
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	domain.Credentials
	Redirect string `json:"redirect"`
}

type registerRequest struct {
	domain.Registration
	Redirect string `json:"redirect"`
}

type sessionResponse struct {
	*services.Session
	Landing string `json:"landing"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	sess, err := h.auth.Login(r.Context(), SessionID(r.Context()), req.Credentials)
	if err != nil {
		handleError(w, r, err)
		return
	}

	h.land(w, r, sess, req.Redirect)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	sess, err := h.auth.Register(r.Context(), SessionID(r.Context()), req.Registration)
	if err != nil {
		handleError(w, r, err)
		return
	}

	h.land(w, r, sess, req.Redirect)
}

// land prefers the redirect from the body, then the one on the query string.
func (h *AuthHandler) land(w http.ResponseWriter, r *http.Request, sess *services.Session, target string) {
	if target == "" {
		target = r.URL.Query().Get("redirect")
	}

	resp := sessionResponse{Session: sess, Landing: services.LandingRoute(sess.Roles)}
	redirect(w, r, services.PostAuthTarget(target, sess.Roles), "", resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), SessionID(r.Context())); err != nil {
		handleError(w, r, err)
		return
	}

	redirect(w, r, "/", "", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auth.Current(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: sess, Landing: services.LandingRoute(sess.Roles)})
}
