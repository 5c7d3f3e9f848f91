package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/srgjo27/cabin_portal/internal/adapter/apiclient"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *apiclient.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return apiclient.New(srv.URL, 5*time.Second)
}

func TestDo_SendsJSONHeadersAndBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Write([]byte(`{"id": 4, "name": "Ana", "email": "ana@example.com", "roles": ["usuario"]}`))
	})

	user, err := client.Me(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ID)
	assert.True(t, user.Roles.Has(domain.RoleUser))
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id": 1, "nombre": "Osiris", "capacidad": 4, "precio_noche": "50000.00"}]`))
	})

	cabins, err := client.ListCabins(context.Background())

	require.NoError(t, err)
	require.Len(t, cabins, 1)
	assert.Equal(t, 50000.0, cabins[0].NightlyRate.Float())
}

func TestDo_EmptyBodyIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Logout(context.Background(), "tok")
	assert.NoError(t, err)

	u, err := client.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.ID)
}

func TestDo_UnwrapsDataEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": 9, "estado": "confirmada"}], "meta": {"total": 1}}`))
	})

	rs, err := client.ListMyReservations(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, domain.ReservationConfirmed, rs[0].Status)
}

func TestDo_ErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message", http.StatusUnprocessableEntity, `{"message": "Fechas inválidas"}`, "Fechas inválidas"},
		{"mensaje", http.StatusConflict, `{"mensaje": "Cabaña ocupada"}`, "Cabaña ocupada"},
		{"error", http.StatusBadRequest, `{"error": "bad"}`, "bad"},
		{"errors map", http.StatusUnprocessableEntity, `{"errors": {"email": ["El email ya existe"]}}`, "El email ya existe"},
		{"not json", http.StatusInternalServerError, `<html>oops</html>`, ports.FallbackMessage},
		{"empty", http.StatusInternalServerError, ``, ports.FallbackMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.GetCabin(context.Background(), 1)

			var apiErr *ports.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestAPIError_IsAuth(t *testing.T) {
	assert.True(t, (&ports.APIError{Status: 401}).IsAuth())
	assert.True(t, (&ports.APIError{Status: 419}).IsAuth())
	assert.True(t, (&ports.APIError{Status: 500, Message: "Unauthenticated."}).IsAuth())
	assert.False(t, (&ports.APIError{Status: 422, Message: "Fechas inválidas"}).IsAuth())
}

func TestUploadReceipt_SendsMultipartWithBoundary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pagos", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "12", r.FormValue("reserva_id"))
		assert.Equal(t, "TRX-1", r.FormValue("referencia"))

		f, hdr, err := r.FormFile("archivo")
		require.NoError(t, err)
		defer f.Close()

		data, _ := io.ReadAll(f)
		assert.Equal(t, "comprobante.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4", string(data))

		w.Write([]byte(`{"id": 3, "reserva_id": 12, "estado": "pendiente"}`))
	})

	receipt, err := client.UploadReceipt(context.Background(), "tok", 12, "TRX-1", domain.Upload{
		Filename: "comprobante.pdf",
		Body:     strings.NewReader("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, receipt.Status)
}

func TestUpdateService_UsesMethodOverride(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/servicios/5", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "1", r.FormValue("activo"))
		assert.Equal(t, "15000", r.FormValue("precio"))

		w.Write([]byte(`{"id": 5, "nombre": "Tinaja", "precio": 15000, "activo": 1}`))
	})

	svc, err := client.UpdateService(context.Background(), "tok", 5, domain.ServiceInput{
		Name:     "Tinaja",
		Price:    15000,
		Category: domain.CategoryAmenity,
		Active:   true,
	})

	require.NoError(t, err)
	assert.True(t, bool(svc.Active))
}

func TestPreviewReservation_DecodesAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "2025-12-10", body["fecha_inicio"])
		assert.Equal(t, "2025-12-12", body["fecha_fin"])
		assert.EqualValues(t, 7, body["cabana_id"])

		w.Write([]byte(`{"disponible": false, "mensaje": "Ocupada esos días"}`))
	})

	from, _ := domain.ParseDate("2025-12-10")
	to, _ := domain.ParseDate("2025-12-12")

	p, err := client.PreviewReservation(context.Background(), "tok", domain.ReservationPayload{
		CabinID: 7,
		From:    from,
		To:      to,
		Guests:  2,
	})

	require.NoError(t, err)
	assert.False(t, bool(p.Available))
	assert.Equal(t, "Ocupada esos días", p.Message)
}

func TestListReservations_EncodesFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "confirmada", q.Get("estado"))
		assert.Equal(t, "3", q.Get("cabana_id"))
		assert.Empty(t, q.Get("q"))

		w.Write([]byte(`[]`))
	})

	_, err := client.ListReservations(context.Background(), "tok", domain.ReservationFilter{
		Status:  domain.ReservationConfirmed,
		CabinID: 3,
	})

	assert.NoError(t, err)
}

func TestOccupancyReport_ReturnsRawDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("desde"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7"))
	})

	doc, err := client.OccupancyReport(context.Background(), "tok", "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), doc.Body)
}
