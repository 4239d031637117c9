package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
)

type fakeAdmins struct {
	admins map[string]bool
	err    error
}

func (f fakeAdmins) IsAdmin(_ context.Context, email string) (bool, error) {
	return f.admins[email], f.err
}

func newTestRouter(t *testing.T, admins AdminChecker) (*gin.Engine, core.TokenService, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := core.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	reached := false
	handler := func(c *gin.Context) {
		reached = true
		claims, ok := ClaimsFrom(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, claims.Email)
	}

	router := gin.New()
	router.Use(RequestLogger(zap.NewNop()), RecoveryMiddleware(zap.NewNop()))
	router.GET("/open", handler)
	router.GET("/private", Require(Authenticated(tokens)), handler)
	router.GET("/admin", Require(Authenticated(tokens), AdminOnly(admins)), handler)
	router.GET("/users/admin/:email", Require(Authenticated(tokens), SelfOnly("email")), handler)
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	return router, tokens, &reached
}

func issue(t *testing.T, tokens core.TokenService, email string) string {
	t.Helper()
	token, err := tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPolicy(t *testing.T) {
	router, tokens, reached := newTestRouter(t, fakeAdmins{admins: map[string]bool{"admin@x.io": true}})
	expired, err := core.NewTokenService("test-secret", -time.Minute)
	require.NoError(t, err)
	foreign, err := core.NewTokenService("other-secret", time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name         string
		path         string
		auth         string
		expectedCode int
		expectedBody string
	}{
		{"open route", "/open", "", http.StatusOK, "anonymous"},
		{"missing header", "/private", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "/private", "Token abc", http.StatusUnauthorized, ""},
		{"bearer without token", "/private", "Bearer ", http.StatusUnauthorized, ""},
		{"foreign signature", "/private", issue(t, foreign, "a@x.io"), http.StatusUnauthorized, ""},
		{"expired token", "/private", issue(t, expired, "a@x.io"), http.StatusUnauthorized, ""},
		{"valid token", "/private", issue(t, tokens, "a@x.io"), http.StatusOK, "a@x.io"},
		{"non admin", "/admin", issue(t, tokens, "a@x.io"), http.StatusForbidden, ""},
		{"admin", "/admin", issue(t, tokens, "admin@x.io"), http.StatusOK, "admin@x.io"},
		{"admin route without token", "/admin", "", http.StatusUnauthorized, ""},
		{"self", "/users/admin/a@x.io", issue(t, tokens, "a@x.io"), http.StatusOK, "a@x.io"},
		{"other user", "/users/admin/admin@x.io", issue(t, tokens, "a@x.io"), http.StatusForbidden, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			*reached = false
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Equal(t, tc.expectedCode == http.StatusOK, *reached)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestAdminOnly_LookupFailure(t *testing.T) {
	router, tokens, reached := newTestRouter(t, fakeAdmins{err: errors.New("store down")})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", issue(t, tokens, "admin@x.io"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, *reached)
}

func TestRecoveryMiddleware(t *testing.T) {
	router, _, _ := newTestRouter(t, fakeAdmins{})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}
