// Package middleware carries the HTTP middleware shared by the route groups.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/smartmart/pos-backend/internal/modules/auth"
)

type contextKey string

const (
	usernameKey  contextKey = "username"
	roleKey      contextKey = "role"
	sessionIDKey contextKey = "session_id"
)

// RequireRole validates the Bearer token and rejects requests whose role
// claim does not match. Claims land in the request context for handlers.
func RequireRole(secret string, role string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				deny(w, http.StatusUnauthorized, "authorization header required")
				return
			}
			signed, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || signed == "" {
				deny(w, http.StatusUnauthorized, "invalid token format")
				return
			}

			claims, err := auth.ParseToken(key, signed)
			if err != nil {
				deny(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Role != role {
				deny(w, http.StatusForbidden, role+" privileges required")
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, claims.Subject)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			if claims.SessionID != "" {
				ctx = context.WithValue(ctx, sessionIDKey, claims.SessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username returns the authenticated username, if any.
func Username(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// SessionID returns the cashier session ID from the token, or uuid.Nil.
func SessionID(ctx context.Context) uuid.UUID {
	raw, _ := ctx.Value(sessionIDKey).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
