package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessions_IssuesCookieForNewVisitor(t *testing.T) {
	f := newFixture(t)
	f.cache.On("GetCabins", mock.Anything).Return([]domain.Cabin{}, true, nil)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/cabanas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.NotEqual(t, sessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessions_KeepsExistingCookie(t *testing.T) {
	f := newFixture(t)
	f.cache.On("GetCabins", mock.Anything).Return([]domain.Cabin{}, true, nil)

	rec := f.serve(request(http.MethodGet, "/cabanas", nil, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, rec.Result().Cookies()[0].Value)
}

func TestRequireSession_RedirectsBrowserToLogin(t *testing.T) {
	f := newFixture(t)
	f.withToken("")

	rec := f.serve(request(http.MethodGet, "/cuenta/reservas/12/huespedes", nil, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fcuenta%2Freservas%2F12%2Fhuespedes", rec.Header().Get("Location"))
}

func TestRequireSession_AnswersJSONClientsWithRedirectBody(t *testing.T) {
	f := newFixture(t)
	f.withToken("")

	rec := f.serve(request(http.MethodGet, "/cuenta/", nil, true))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/login?redirect=%2Fcuenta%2F", body["redirect"])
}

func TestRequireAdmin_SendsNonAdminsToAccount(t *testing.T) {
	f := newFixture(t)
	f.asGuest()

	rec := f.serve(request(http.MethodGet, "/admin/reservas", nil, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cuenta", rec.Header().Get("Location"))
	f.reservations.AssertNotCalled(t, "ListReservations", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequireAdmin_FailedRoleLookupClearsToken(t *testing.T) {
	f := newFixture(t)
	f.withToken(token)
	f.authAPI.On("Me", mock.Anything, token).Return(nil, &ports.APIError{Status: http.StatusInternalServerError, Message: "boom"})
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil).Once()

	rec := f.serve(request(http.MethodGet, "/admin/reservas", nil, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2Freservas", rec.Header().Get("Location"))
}

func TestRequireAdmin_ExpiredTokenGoesToLogin(t *testing.T) {
	f := newFixture(t)
	f.withToken(token)
	f.authAPI.On("Me", mock.Anything, token).Return(nil, &ports.APIError{Status: http.StatusUnauthorized, Message: "Unauthenticated."})
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil).Once()

	rec := f.serve(request(http.MethodGet, "/admin/", nil, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadmin%2F", rec.Header().Get("Location"))
}

func TestRequireAdmin_ServesAdmins(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.reservations.On("ListReservations", mock.Anything, token, domain.ReservationFilter{Status: domain.ReservationConfirmed, CabinID: 3}).
		Return([]domain.Reservation{{ID: 12, Status: domain.ReservationConfirmed, Total: money(100000)}}, nil)

	rec := f.serve(request(http.MethodGet, "/admin/reservas?estado=confirmada&cabana_id=3", nil, true))

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0]["can_checkin"])
	f.authAPI.AssertNumberOfCalls(t, "Me", 1)
}

func money(v float64) *domain.Money {
	m := domain.Money(v)
	return &m
}
