package handler

import (
	"net/http"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type AccountHandler struct {
	account     *services.AccountService
	guests      *services.GuestService
	payments    *services.PaymentService
	uploadLimit int64
}

func NewAccountHandler(account *services.AccountService, guests *services.GuestService, payments *services.PaymentService, maxReceiptBytes int64) *AccountHandler {
	return &AccountHandler{
		account:     account,
		guests:      guests,
		payments:    payments,
		uploadLimit: maxReceiptBytes + 1<<20,
	}
}

func (h *AccountHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.account.Overview(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *AccountHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	res, err := h.account.Cancel(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

type changeDatesRequest struct {
	From string `json:"desde"`
	To   string `json:"hasta"`
}

func (h *AccountHandler) ChangeDates(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	var req changeDatesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	res, err := h.account.ChangeDates(r.Context(), SessionID(r.Context()), id, req.From, req.To)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

type addExtrasRequest struct {
	Extras []domain.ExtraLine `json:"servicios"`
}

func (h *AccountHandler) AddExtras(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	var req addExtrasRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	res, err := h.account.AddExtras(r.Context(), SessionID(r.Context()), id, req.Extras)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *AccountHandler) Rebook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	target, err := h.account.RebookTarget(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	redirect(w, r, target, "", nil)
}

func (h *AccountHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	roster, err := h.guests.List(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roster)
}

// AddGuest needs ?confirmar=1 once the declared guest count is reached.
func (h *AccountHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	var in domain.GuestInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	roster, err := h.guests.Add(r.Context(), SessionID(r.Context()), id, in, confirmed(r))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, roster)
}

func (h *AccountHandler) RemoveGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	guestID, okGuest := idParam(r, "guestID")
	if !ok || !okGuest {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	roster, err := h.guests.Remove(r.Context(), SessionID(r.Context()), id, guestID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roster)
}

func (h *AccountHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	file, closeFile, err := parseUpload(w, r, "archivo", h.uploadLimit)
	if uploadFailed(w, err) {
		return
	}

	defer closeFile()

	res, err := h.payments.Upload(r.Context(), SessionID(r.Context()), id, r.FormValue("referencia"), file)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}
