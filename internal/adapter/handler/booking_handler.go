package handler

import (
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type BookingHandler struct {
	booking *services.BookingService
}

func NewBookingHandler(booking *services.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// Reserve takes the cabin from the path; a body cabana_id is ignored.
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	cabinID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	var req services.ReserveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	req.CabinID = cabinID

	outcome, err := h.booking.Reserve(r.Context(), SessionID(r.Context()), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	redirect(w, r, outcome.Redirect, outcome.Message, outcome)
}
