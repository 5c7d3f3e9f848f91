package services_test

import (
	"testing"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports/mocks"
	"github.com/srgjo27/cabin_portal/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sessionID = "3f1c9b52-8a0e-4c1d-9e55-1f2d3c4b5a69"
	token     = "42|plain-token"
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

	auth    *services.AuthService
	catalog *services.CatalogService
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

	f.auth = services.NewAuthService(f.authAPI, f.tokens)
	f.catalog = services.NewCatalogService(f.cabins, f.serviceAPI, f.cache, f.prefs)

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

func (f *fixture) cabinsCached(cabins ...domain.Cabin) {
	f.cache.On("GetCabins", mock.Anything).Return(cabins, true, nil)
}

func (f *fixture) guardFree(key string) {
	f.guard.On("Acquire", mock.Anything, key).Return("owner-1", true, nil).Once()
	f.guard.On("Release", mock.Anything, key, "owner-1").Return(nil).Once()
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()

	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func money(v float64) *domain.Money {
	m := domain.Money(v)
	return &m
}
