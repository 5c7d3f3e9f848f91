package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
)

func (h *AdminHandler) ListCabins(w http.ResponseWriter, r *http.Request) {
	cabins, err := h.admin.Cabins(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cabins)
}

func (h *AdminHandler) CreateCabin(w http.ResponseWriter, r *http.Request) {
	var in domain.CabinInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	cabin, err := h.admin.CreateCabin(r.Context(), SessionID(r.Context()), in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cabin)
}

func (h *AdminHandler) UpdateCabin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	var in domain.CabinInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida.")
		return
	}

	cabin, err := h.admin.UpdateCabin(r.Context(), SessionID(r.Context()), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cabin)
}

// DeleteCabin is a hard delete and needs ?confirmar=1.
func (h *AdminHandler) DeleteCabin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	if err := h.admin.DeleteCabin(r.Context(), SessionID(r.Context()), id, confirmed(r)); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	images, err := h.admin.CabinImages(r.Context(), SessionID(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, images)
}

func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	file, closeFile, err := parseUpload(w, r, "imagen", h.uploadLimit)
	if uploadFailed(w, err) {
		return
	}

	defer closeFile()

	img, err := h.admin.UploadCabinImage(r.Context(), SessionID(r.Context()), id, file)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, img)
}

func (h *AdminHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	imageID, okImage := idParam(r, "imageID")
	if !ok || !okImage {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	if err := h.admin.DeleteCabinImage(r.Context(), SessionID(r.Context()), id, imageID, confirmed(r)); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	imageID, okImage := idParam(r, "imageID")
	if !ok || !okImage {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	if err := h.admin.SetCabinCover(r.Context(), SessionID(r.Context()), id, imageID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	svcs, err := h.admin.Services(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, svcs)
}

// serviceInput reads the multipart service form. The image is optional.
func (h *AdminHandler) serviceInput(w http.ResponseWriter, r *http.Request) (domain.ServiceInput, func(), bool) {
	file, closeFile, err := parseUpload(w, r, "imagen", h.uploadLimit)
	if uploadFailed(w, err) {
		return domain.ServiceInput{}, nil, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("precio")), 64)
	if err != nil {
		closeFile()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "El precio debe ser un número.", Field: "precio"})
		return domain.ServiceInput{}, nil, false
	}

	active := true
	if v := r.FormValue("activo"); v != "" {
		active = v == "on" || v == "1" || strings.EqualFold(v, "true")
	}

	in := domain.ServiceInput{
		Name:        strings.TrimSpace(r.FormValue("nombre")),
		Description: strings.TrimSpace(r.FormValue("descripcion")),
		Price:       price,
		Category:    domain.ServiceCategory(r.FormValue("categoria")),
		Active:      active,
		Image:       file,
	}

	return in, closeFile, true
}

func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	in, closeFile, ok := h.serviceInput(w, r)
	if !ok {
		return
	}

	defer closeFile()

	svc, err := h.admin.CreateService(r.Context(), SessionID(r.Context()), in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, svc)
}

func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	in, closeFile, ok := h.serviceInput(w, r)
	if !ok {
		return
	}

	defer closeFile()

	svc, err := h.admin.UpdateService(r.Context(), SessionID(r.Context()), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, svc)
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	if err := h.admin.DeleteService(r.Context(), SessionID(r.Context()), id, confirmed(r)); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
