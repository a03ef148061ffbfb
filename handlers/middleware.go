package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/permissions"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// AccountContextKey is the key used to store the signed-in account in the request context.
	AccountContextKey ContextKey = "account"
)

// Authenticator verifies a bearer token and returns the account it belongs to
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

// AuthMiddleware verifies the bearer token and, if valid, adds the account to the request context.
func AuthMiddleware(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(w, r)
			if !ok {
				return
			}

			account, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug("rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), AccountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken reads the Authorization header. Websocket clients cannot set headers,
// so an access_token query parameter is accepted when the header is absent.
func bearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, true
		}
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authorization header required")
		return "", false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authorization header format must be Bearer {token}")
		return "", false
	}
	return parts[1], true
}

// AccountFromContext returns the account stored by AuthMiddleware
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountContextKey).(*models.Account)
	return account, ok && account != nil
}

// RequirePermission rejects requests whose account role lacks the permission. It must run after AuthMiddleware.
func RequirePermission(requiredPermission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := AccountFromContext(r.Context())
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
				return
			}

			if !permissions.RoleHasPermission(account.Role, requiredPermission) {
				WriteAPIError(w, http.StatusForbidden, CodeForbidden, fmt.Sprintf("Forbidden: requires permission '%s'", requiredPermission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
