package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/api/middleware"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

const testSecret = "test-secret"

func signedRequest(t *testing.T, auth *middleware.Authenticator, principal middleware.Principal) *http.Request {
	t.Helper()
	token, err := auth.Sign(principal, time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := middleware.NewAuthenticator(testSecret)

	var seen *middleware.Principal
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = middleware.PrincipalFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signedRequest(t, auth, middleware.Principal{UserID: "u1", Email: "a@example.com", Role: entities.UserRoleShop}))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.UserID)
	assert.Equal(t, entities.UserRoleShop, seen.Role)
}

func TestAuthenticator_RejectsBadTokens(t *testing.T) {
	auth := middleware.NewAuthenticator(testSecret)
	other := middleware.NewAuthenticator("another-secret")
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, signedRequest(t, other, middleware.Principal{UserID: "u1"}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.Sign(middleware.Principal{UserID: "u1"}, time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no subject", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, signedRequest(t, auth, middleware.Principal{Email: "a@example.com"}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthenticator_UnknownRoleIsUser(t *testing.T) {
	auth := middleware.NewAuthenticator(testSecret)
	token, err := auth.Sign(middleware.Principal{UserID: "u1", Role: "superuser"}, time.Hour, time.Now())
	require.NoError(t, err)

	principal, err := auth.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleUser, principal.Role)
}

func TestRequireRole(t *testing.T) {
	auth := middleware.NewAuthenticator(testSecret)
	handler := auth.Middleware(middleware.RequireRole(entities.UserRoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		role entities.UserRole
		want int
	}{
		{role: entities.UserRoleAdmin, want: http.StatusNoContent},
		{role: entities.UserRoleShop, want: http.StatusForbidden},
		{role: entities.UserRoleUser, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, signedRequest(t, auth, middleware.Principal{UserID: "u1", Role: tt.role}))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuthentication(t *testing.T) {
	handler := middleware.RequireRole(entities.UserRoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
