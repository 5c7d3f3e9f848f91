package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOccupancyReport_ServedInline(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.reports.On("OccupancyReport", mock.Anything, token, "2025-12-01", "2025-12-31").
		Return(&domain.Document{ContentType: "application/pdf", Body: []byte("%PDF-1.4")}, nil)

	rec := f.serve(request(http.MethodGet, "/admin/reportes/ocupacion?desde=2025-12-01&hasta=2025-12-31", nil, false))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="reporte-ocupacion-2025-12-01-2025-12-31.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestDeleteCabin_AsksForConfirmation(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()

	rec := f.serve(request(http.MethodDelete, "/admin/cabanas/7", nil, true))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"needs_confirmation":true`)
	f.cabins.AssertNotCalled(t, "DeleteCabin", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCabin_ConfirmedInvalidatesCatalog(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.guardFree("cabin:7")
	f.cabins.On("DeleteCabin", mock.Anything, token, int64(7)).Return(nil)
	f.cache.On("Invalidate", mock.Anything).Return(nil)

	rec := f.serve(request(http.MethodDelete, "/admin/cabanas/7?confirmar=true", nil, true))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestValidatePayment_InFlightIsConflict(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.guard.On("Acquire", mock.Anything, "payment:4").Return("", false, nil)

	rec := f.serve(request(http.MethodPost, "/admin/pagos/4/validar", nil, true))

	assert.Equal(t, http.StatusConflict, rec.Code)
	f.payments.AssertNotCalled(t, "ValidateReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckIn_PassesThrough(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.guardFree("checkin:12")
	f.reservations.On("CheckIn", mock.Anything, token, int64(12)).
		Return(&domain.Reservation{ID: 12, Status: domain.ReservationCheckIn}, nil)

	rec := f.serve(request(http.MethodPost, "/admin/reservas/12/checkin", nil, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estado":"checkin"`)
}

func serviceForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestCreateService_ReadsMultipartForm(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.serviceAPI.On("CreateService", mock.Anything, token, domain.ServiceInput{
		Name:     "Tinaja",
		Price:    25000,
		Category: domain.CategoryExperience,
		Active:   true,
	}).Return(&domain.Service{ID: 5, Name: "Tinaja"}, nil)

	body, ct := serviceForm(t, map[string]string{"nombre": " Tinaja ", "precio": "25000", "categoria": "experiencia"})
	req := request(http.MethodPost, "/admin/servicios", body, true)
	req.Header.Set("Content-Type", ct)

	rec := f.serve(req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateService_BadPriceIsUnprocessable(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()

	body, ct := serviceForm(t, map[string]string{"nombre": "Tinaja", "precio": "mucho", "categoria": "experiencia"})
	req := request(http.MethodPost, "/admin/servicios", body, true)
	req.Header.Set("Content-Type", ct)

	rec := f.serve(req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"precio"`)
}
