package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/srgjo27/cabin_portal/internal/adapter/handler"
	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports/mocks"
	"github.com/srgjo27/cabin_portal/internal/core/services"
	"github.com/stretchr/testify/mock"
)

const (
	sessionID  = "3f1c9b52-8a0e-4c1d-9e55-1f2d3c4b5a69"
	token      = "42|plain-token"
	cookieName = "portal_session"
)

type fixture struct {
	authAPI      *mocks.AuthAPI
	tokens       *mocks.TokenStore
	cabins       *mocks.CabinAPI
	serviceAPI   *mocks.ServiceAPI
	reservations *mocks.ReservationAPI
	guests       *mocks.GuestAPI
	payments     *mocks.PaymentAPI
	reports      *mocks.ReportAPI
	cache        *mocks.CatalogCache
	prefs        *mocks.SearchPrefsRepository
	guard        *mocks.InflightGuard

	router http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		authAPI:      mocks.NewAuthAPI(t),
		tokens:       mocks.NewTokenStore(t),
		cabins:       mocks.NewCabinAPI(t),
		serviceAPI:   mocks.NewServiceAPI(t),
		reservations: mocks.NewReservationAPI(t),
		guests:       mocks.NewGuestAPI(t),
		payments:     mocks.NewPaymentAPI(t),
		reports:      mocks.NewReportAPI(t),
		cache:        mocks.NewCatalogCache(t),
		prefs:        mocks.NewSearchPrefsRepository(t),
		guard:        mocks.NewInflightGuard(t),
	}

	auth := services.NewAuthService(f.authAPI, f.tokens)
	catalog := services.NewCatalogService(f.cabins, f.serviceAPI, f.cache, f.prefs)
	payments := services.NewPaymentService(auth, f.reservations, f.payments, f.guard, services.DefaultMaxReceiptBytes)

	h := handler.Handlers{
		Auth:    handler.NewAuthHandler(auth),
		Catalog: handler.NewCatalogHandler(catalog),
		Booking: handler.NewBookingHandler(services.NewBookingService(auth, catalog, f.reservations, f.guard)),
		Account: handler.NewAccountHandler(
			services.NewAccountService(auth, f.reservations, f.guard),
			services.NewGuestService(auth, catalog, f.reservations, f.guests, f.guard),
			payments,
			services.DefaultMaxReceiptBytes,
		),
		Admin: handler.NewAdminHandler(
			services.NewAdminService(auth, catalog, f.cabins, f.serviceAPI, f.reservations, f.reports, f.guard),
			payments,
			services.DefaultMaxReceiptBytes,
		),
	}

	cfg := handler.RouterConfig{Cookie: handler.CookieConfig{Name: cookieName, TTL: time.Hour}}
	f.router = handler.NewRouter(cfg, auth, h)

	return f
}

func (f *fixture) withToken(tok string) {
	f.tokens.On("Get", mock.Anything, sessionID).Return(tok, nil)
}

func (f *fixture) withUser(user *domain.User) {
	f.authAPI.On("Me", mock.Anything, token).Return(user, nil)
}

func (f *fixture) asAdmin() {
	f.withToken(token)
	f.withUser(&domain.User{ID: 1, Name: "Admin", Roles: domain.Roles{domain.RoleAdmin}})
}

func (f *fixture) asGuest() {
	f.withToken(token)
	f.withUser(&domain.User{ID: 9, Name: "Ana", Roles: domain.Roles{domain.RoleUser}})
}

func (f *fixture) guardFree(key string) {
	f.guard.On("Acquire", mock.Anything, key).Return("owner-1", true, nil).Once()
	f.guard.On("Release", mock.Anything, key, "owner-1").Return(nil).Once()
}

// request builds a request carrying the test session cookie.
func request(method, target string, body io.Reader, jsonClient bool) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: sessionID})
	if jsonClient {
		req.Header.Set("Accept", "application/json")
	}

	return req
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
