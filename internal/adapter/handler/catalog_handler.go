package handler

import (
	"net/http"
	"strconv"

	"github.com/srgjo27/cabin_portal/internal/core/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func searchQuery(r *http.Request) services.SearchRequest {
	q := r.URL.Query()
	guests, _ := strconv.Atoi(q.Get("huespedes"))

	return services.SearchRequest{From: q.Get("desde"), To: q.Get("hasta"), Guests: guests}
}

func (h *CatalogHandler) ListCabins(w http.ResponseWriter, r *http.Request) {
	cabins, err := h.catalog.Cabins(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cabins)
}

func (h *CatalogHandler) CabinDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "No encontrado.")
		return
	}

	detail, err := h.catalog.Detail(r.Context(), id, searchQuery(r))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Search(r.Context(), SessionID(r.Context()), searchQuery(r))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.catalog.Prefill(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	if prefs == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

func (h *CatalogHandler) ForgetSearch(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.ForgetSearch(r.Context(), SessionID(r.Context())); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	svcs, err := h.catalog.Services(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, svcs)
}
