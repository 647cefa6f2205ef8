// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authProbe wires the auth middleware in front of a handler that records the
// user injected into the request context.
func authProbe(t *testing.T, auth service.AuthService) (http.Handler, *models.User) {
	t.Helper()

	var seen models.User
	h := newTestHandler(t, &service.Services{AuthService: auth})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok, "user must be injected into the context")
		seen = user
		w.WriteHeader(http.StatusOK)
	})

	return h.auth(next), &seen
}

func TestAuthMiddleware_InjectsUser(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, "good-token", tokenString)
			return aliceUser, nil
		},
	}

	handler, seen := authProbe(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, aliceUser, *seen)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"scheme only", "Bearer"},
		{"empty token", "Bearer "},
		{"rejected token", "Bearer expired-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := authProbe(t, auth)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), credentialsErrorMessage,
				"every rejection must use the same generic body")
		})
	}
}

func TestAuthMiddleware_InactiveUser(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrInactiveUser
		},
	}

	handler, _ := authProbe(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer valid-but-inactive")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
