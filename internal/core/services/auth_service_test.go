package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
	"github.com/srgjo27/cabin_portal/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresTokenAndNotifiesSubscribers(t *testing.T) {
	f := newFixture(t)
	creds := domain.Credentials{Email: "ana@example.com", Password: "secret"}
	user := &domain.User{ID: 9, Name: "Ana", Roles: domain.Roles{domain.RoleUser}}

	f.authAPI.On("Login", mock.Anything, creds).Return(&domain.AuthResult{Token: token, User: user}, nil)
	f.tokens.On("Set", mock.Anything, sessionID, token).Return(nil)

	var events []services.AuthEvent
	unsubscribe := f.auth.Subscribe(func(ev services.AuthEvent) {
		events = append(events, ev)
	})
	defer unsubscribe()

	sess, err := f.auth.Login(context.Background(), sessionID, domain.Credentials{Email: " ana@example.com ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.True(t, sess.Roles.Has(domain.RoleUser))
	require.Len(t, events, 1)
	assert.Equal(t, services.EventLoggedIn, events[0].Kind)
	assert.Equal(t, sessionID, events[0].SessionID)
}

func TestLogin_ValidatesBeforeCallingAPI(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(context.Background(), sessionID, domain.Credentials{Email: "not-an-email", Password: "x"})

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
	f.authAPI.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogin_BadCredentialsAreRejectedVerbatim(t *testing.T) {
	f := newFixture(t)
	f.authAPI.On("Login", mock.Anything, mock.Anything).
		Return(nil, &ports.APIError{Status: 401, Message: "Credenciales inválidas"})

	_, err := f.auth.Login(context.Background(), sessionID, domain.Credentials{Email: "ana@example.com", Password: "bad"})

	var rejected *services.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Credenciales inválidas", rejected.Message)
	f.tokens.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_PasswordConfirmationMustMatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(context.Background(), sessionID, domain.Registration{
		Name:                 "Ana",
		Email:                "ana@example.com",
		Password:             "supersecret",
		PasswordConfirmation: "different1",
	})

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "password_confirmation", verr.Field)
}

func TestLogout_ClearsTokenEvenWhenRemoteFails(t *testing.T) {
	f := newFixture(t)
	f.withToken(token)
	f.authAPI.On("Logout", mock.Anything, token).Return(errors.New("timeout"))
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil).Once()

	var kinds []services.AuthEventKind
	f.auth.Subscribe(func(ev services.AuthEvent) { kinds = append(kinds, ev.Kind) })

	err := f.auth.Logout(context.Background(), sessionID)

	assert.NoError(t, err)
	assert.Equal(t, []services.AuthEventKind{services.EventLoggedOut}, kinds)
}

func TestSubscribe_UnsubscribeStopsDelivery(t *testing.T) {
	f := newFixture(t)
	f.withToken("")
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil)

	calls := 0
	unsubscribe := f.auth.Subscribe(func(services.AuthEvent) { calls++ })

	require.NoError(t, f.auth.Logout(context.Background(), sessionID))
	unsubscribe()
	require.NoError(t, f.auth.Logout(context.Background(), sessionID))

	assert.Equal(t, 1, calls)
	f.authAPI.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestCurrent_WithoutTokenIsUnauthenticated(t *testing.T) {
	f := newFixture(t)
	f.withToken("")

	_, err := f.auth.Current(context.Background(), sessionID)

	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	f.authAPI.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}

func TestCurrent_UnauthenticatedMessageExpiresSession(t *testing.T) {
	f := newFixture(t)
	f.withToken(token)
	f.authAPI.On("Me", mock.Anything, token).Return(nil, &ports.APIError{Status: 500, Message: "Unauthenticated."})
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil).Once()

	_, err := f.auth.Current(context.Background(), sessionID)

	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestToken_ExplicitTokenWins(t *testing.T) {
	f := newFixture(t)

	ctx := services.WithExplicitToken(context.Background(), "explicit")
	tok, err := f.auth.Token(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, "explicit", tok)
	f.tokens.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		sess, err := f.auth.RequireAdmin(context.Background(), sessionID)
		require.NoError(t, err)
		assert.True(t, sess.IsAdmin())
	})

	t.Run("regular user", func(t *testing.T) {
		f := newFixture(t)
		f.asGuest()

		_, err := f.auth.RequireAdmin(context.Background(), sessionID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("session resolved by guard", func(t *testing.T) {
		f := newFixture(t)
		ctx := services.WithSession(context.Background(), &services.Session{
			ID:    sessionID,
			Token: token,
			Roles: domain.Roles{domain.RoleAdmin},
		})

		sess, err := f.auth.RequireAdmin(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, token, sess.Token)
		f.authAPI.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})
}

func TestLandingRoute(t *testing.T) {
	assert.Equal(t, "/admin", services.LandingRoute(domain.Roles{domain.RoleUser, domain.RoleAdmin}))
	assert.Equal(t, "/cuenta", services.LandingRoute(domain.Roles{domain.RoleReceptionist}))
	assert.Equal(t, "/cuenta", services.LandingRoute(nil))
}

func TestSafeRedirect(t *testing.T) {
	for _, target := range []string{"/cuenta", "/cabanas/7?desde=2025-12-01&hasta=2025-12-03&huespedes=2"} {
		got, ok := services.SafeRedirect(target)
		assert.True(t, ok, target)
		assert.Equal(t, target, got)
	}

	for _, target := range []string{"", "cuenta", "//evil.example", "https://evil.example/x", "/\\evil.example"} {
		_, ok := services.SafeRedirect(target)
		assert.False(t, ok, target)
	}
}

func TestPostAuthTarget_ExplicitRedirectWins(t *testing.T) {
	admin := domain.Roles{domain.RoleAdmin}

	assert.Equal(t, "/cabanas/7?desde=2025-12-01", services.PostAuthTarget("/cabanas/7?desde=2025-12-01", admin))
	assert.Equal(t, "/admin", services.PostAuthTarget("https://evil.example", admin))
	assert.Equal(t, "/cuenta", services.PostAuthTarget("", nil))
}

func TestLoginURL_EncodesReturnPath(t *testing.T) {
	assert.Equal(t, "/login?redirect=%2Fcuenta%3Ftab%3D2", services.LoginURL("/cuenta?tab=2"))
	assert.Equal(t, "/login", services.LoginURL("https://evil.example"))
}
