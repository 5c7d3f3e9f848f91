package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/srgjo27/cabin_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *fixture) loginSucceeds(roles ...string) {
	creds := domain.Credentials{Email: "ana@example.com", Password: "secret123"}
	f.authAPI.On("Login", mock.Anything, creds).
		Return(&domain.AuthResult{Token: token, User: &domain.User{ID: 9, Name: "Ana"}, Roles: roles}, nil)
	f.tokens.On("Set", mock.Anything, sessionID, token).Return(nil)
}

func TestLogin_AdminLandsOnBackOffice(t *testing.T) {
	f := newFixture(t)
	f.loginSucceeds(domain.RoleAdmin)

	body := `{"email":" ana@example.com ","password":"secret123"}`
	rec := f.serve(request(http.MethodPost, "/login", strings.NewReader(body), true))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Redirect string `json:"redirect"`
		Data     struct {
			Landing string `json:"landing"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/admin", resp.Redirect)
	assert.Equal(t, "/admin", resp.Data.Landing)
}

func TestLogin_ExplicitRedirectWins(t *testing.T) {
	f := newFixture(t)
	f.loginSucceeds(domain.RoleAdmin)

	body := `{"email":"ana@example.com","password":"secret123"}`
	rec := f.serve(request(http.MethodPost, "/login?redirect=%2Fcabanas%2F7%3Fdesde%3D2025-12-10", strings.NewReader(body), false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cabanas/7?desde=2025-12-10", rec.Header().Get("Location"))
}

func TestLogin_IgnoresOffsiteRedirect(t *testing.T) {
	f := newFixture(t)
	f.loginSucceeds(domain.RoleUser)

	body := `{"email":"ana@example.com","password":"secret123","redirect":"//evil.example"}`
	rec := f.serve(request(http.MethodPost, "/login", strings.NewReader(body), false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cuenta", rec.Header().Get("Location"))
}

func TestLogin_InvalidEmailIsUnprocessable(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(request(http.MethodPost, "/login", strings.NewReader(`{"email":"nope","password":"x"}`), true))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
	f.authAPI.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogout_ClearsTokenEvenWhenRemoteFails(t *testing.T) {
	f := newFixture(t)
	f.withToken(token)
	f.authAPI.On("Logout", mock.Anything, token).Return(errors.New("connection refused"))
	f.tokens.On("Clear", mock.Anything, sessionID).Return(nil).Once()

	rec := f.serve(request(http.MethodPost, "/logout", nil, false))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestMe_ReturnsSessionWithLanding(t *testing.T) {
	f := newFixture(t)
	f.asGuest()

	rec := f.serve(request(http.MethodGet, "/sesion", nil, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"landing":"/cuenta"`)
	assert.NotContains(t, rec.Body.String(), token)
}
