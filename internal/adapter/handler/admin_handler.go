package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type AdminHandler struct {
	admin       *services.AdminService
	payments    *services.PaymentService
	uploadLimit int64
}

func NewAdminHandler(admin *services.AdminService, payments *services.PaymentService, maxUploadBytes int64) *AdminHandler {
	return &AdminHandler{admin: admin, payments: payments, uploadLimit: maxUploadBytes + 1<<20}
}

func (h *AdminHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cabinID, _ := strconv.ParseInt(q.Get("cabana_id"), 10, 64)

	filter := domain.ReservationFilter{
		Status:  domain.ReservationStatus(q.Get("estado")),
		From:    q.Get("desde"),
		To:      q.Get("hasta"),
		CabinID: cabinID,
		Query:   strings.TrimSpace(q.Get("q")),
	}

	rows, err := h.admin.Reservations(r.Context(), SessionID(r.Context()), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.admin.CheckIn)
}

func (h *AdminHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.admin.CheckOut)
}

type transitionFunc func(ctx context.Context, sessionID string, id int64) (*domain.Reservation, error)

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, call transitionFunc) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	res, err := call(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) ValidatePayment(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.payments.Validate)
}

func (h *AdminHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.payments.Reject)
}

func (h *AdminHandler) review(w http.ResponseWriter, r *http.Request, call func(context.Context, string, int64) (*domain.Receipt, error)) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	receipt, err := call(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// OccupancyReport serves the PDF inline so the browser opens it for printing.
func (h *AdminHandler) OccupancyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	report, err := h.admin.OccupancyReport(r.Context(), SessionID(r.Context()), q.Get("desde"), q.Get("hasta"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	ct := report.Document.ContentType
	if ct == "" {
		ct = "application/pdf"
	}

	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", report.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Document.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Document.Body)
}
