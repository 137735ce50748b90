package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/rsharda/kam-leads/internal/entity"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string, method jwt.SigningMethod, ttl time.Duration) string {
	t.Helper()

	claims := &Claims{
		UserID:   "user-1",
		Username: "kam1",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
	assert.NoError(t, err)
	return signed
}

func protected(t *testing.T, mws ...func(http.Handler) http.Handler) http.Handler {
	t.Helper()

	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		assert.True(t, ok)
		w.Write([]byte(caller.Username))
	})
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
}

func TestAuthenticatorRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header format")
}

func TestAuthenticatorRejectsExpiredToken(t *testing.T) {
	token := signToken(t, entity.RoleKAM, jwt.SigningMethodHS256, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthenticatorAttachesClaims(t *testing.T) {
	token := signToken(t, entity.RoleKAM, jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kam1", rec.Body.String())
}

func TestRequireRoleForbidsOutsiders(t *testing.T) {
	token := signToken(t, entity.RoleViewer, jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret), RequireRole(entity.RoleAdmin, entity.RoleKAM)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "do not have permission")
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	token := signToken(t, entity.RoleAdmin, jwt.SigningMethodHS256, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	protected(t, Authenticator(testSecret), RequireRole(entity.RoleAdmin)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
