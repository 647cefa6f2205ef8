package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to an active account via [service.AuthService.VerifyToken],
// and — on success — stores the authenticated user in the request context
// under [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Every rejection responds with HTTP 401 Unauthorized and the same generic
// body, regardless of whether the header was missing, the token malformed,
// expired, or issued for an account that no longer exists or is deactivated.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
