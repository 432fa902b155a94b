package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(t *testing.T, gotUserID *uint) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotUserID != nil {
			id, ok := r.Context().Value(CtxUserID).(uint)
			require.True(t, ok, "user id missing from context")
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret-de-test")
	token, err := tm.Generate(42, "jean@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jean@example.com", claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate(1, "a@b.fr")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestGateDisabledAllowsAPIWithoutCredentials(t *testing.T) {
	var userID uint = 99
	gate := NewGate(false, NewTokenManager("s"))
	h := gate.Middleware(okHandler(t, &userID))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sale", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(0), userID, "anonymous principal expected")
}

func TestGateDisabledDeniesOutsideAPI(t *testing.T) {
	gate := NewGate(false, NewTokenManager("s"))
	h := gate.Middleware(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateEnabledRequiresToken(t *testing.T) {
	gate := NewGate(true, NewTokenManager("s"))
	h := gate.Middleware(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sale", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestGateEnabledRejectsInvalidToken(t *testing.T) {
	gate := NewGate(true, NewTokenManager("s"))
	h := gate.Middleware(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/sale", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateEnabledAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("s")
	token, err := tm.Generate(7, "u@example.com")
	require.NoError(t, err)

	var userID uint
	gate := NewGate(true, tm)
	h := gate.Middleware(okHandler(t, &userID))

	req := httptest.NewRequest(http.MethodGet, "/api/sale", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), userID)
}

func TestGatePublicEndpointsAlwaysPass(t *testing.T) {
	public := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/login"},
		{http.MethodPost, "/api/utilisateur"},
		{http.MethodGet, "/api/utilisateur/ping"},
		{http.MethodGet, "/api/material/ping"},
		{http.MethodGet, "/api/config/jwt"},
		{http.MethodGet, "/api/doc"},
		{http.MethodGet, "/api/doc.json"},
	}
	for _, enabled := range []bool{true, false} {
		gate := NewGate(enabled, NewTokenManager("s"))
		h := gate.Middleware(okHandler(t, nil))
		for _, p := range public {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
			assert.Equalf(t, http.StatusOK, rec.Code, "jwtEnabled=%v %s %s", enabled, p.method, p.path)
		}
	}
}

func TestGateUserListingStaysProtected(t *testing.T) {
	// Only POST /api/utilisateur is public; GET must require a token.
	gate := NewGate(true, NewTokenManager("s"))
	h := gate.Middleware(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/utilisateur", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
