package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func principalEcho(t *testing.T, captured *middleware.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFromContext(r.Context())
		require.True(t, ok)
		*captured = p
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantRole   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + sign(t, jwt.MapClaims{"sub": "user-1", "role": "staff", "exp": time.Now().Add(time.Hour).Unix()}, secret),
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
			wantRole:   "staff",
		},
		{
			name:       "role defaults to buyer",
			header:     "Bearer " + sign(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}, secret),
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
			wantRole:   "buyer",
		},
		{
			name:       "wrong signing key",
			header:     "Bearer " + sign(t, jwt.MapClaims{"sub": "user-1"}, "other-secret"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + sign(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}, secret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing sub",
			header:     "Bearer " + sign(t, jwt.MapClaims{"role": "staff"}, secret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p middleware.Principal
			h := middleware.Auth(secret)(principalEcho(t, &p))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantUser, p.UserID)
				assert.Equal(t, tc.wantRole, p.Role)
				assert.False(t, p.Anonymous)
			}
		})
	}
}

func TestAuthOptional(t *testing.T) {
	t.Run("anonymous header works without a token", func(t *testing.T) {
		var p middleware.Principal
		h := middleware.AuthOptional(secret)(principalEcho(t, &p))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Anonymous-Token", "tok-1")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "anon:tok-1", p.UserID)
		assert.True(t, p.Anonymous)
	})

	t.Run("real token wins over the anonymous header", func(t *testing.T) {
		var p middleware.Principal
		h := middleware.AuthOptional(secret)(principalEcho(t, &p))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}, secret))
		req.Header.Set("X-Anonymous-Token", "tok-1")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", p.UserID)
		assert.False(t, p.Anonymous)
	})

	t.Run("nothing at all is rejected", func(t *testing.T) {
		var p middleware.Principal
		h := middleware.AuthOptional(secret)(principalEcho(t, &p))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	h := middleware.Auth(secret)(middleware.RequireRole("staff", "admin")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	))

	t.Run("allowed role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.MapClaims{"sub": "user-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}, secret))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("buyer is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}, secret))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
