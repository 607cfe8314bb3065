package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/jaewoo-dev/instalite/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth is a pure gate: it recovers the authenticated user id from the
// Authorization header and attaches it to the request context, or rejects
// with 401. It never touches storage and makes no ownership decision.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				writeUnauthorized(w, "Authorization token required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				writeUnauthorized(w, "Authorization token required")
				return
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				// The classified error is logged but clients see a single
				// undifferentiated message.
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"` + message + `"}`))
}
