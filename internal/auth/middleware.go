package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type contextKey string

// userIDKey is the context key the middleware stores the authenticated
// user id under.
const userIDKey = contextKey("userID")

// UserID returns the authenticated user id attached by Middleware, or false
// when the request never passed through it.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Middleware creates the authorization gate protecting a route. It reads the
// session cookie, verifies it with the codec, and either passes the request
// on with the user id in its context or short-circuits with a rejection.
// A missing cookie is rejected without touching the codec.
func Middleware(codec *TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				reject(w, http.StatusUnauthorized, "Access Denied: No token provided")
				return
			}

			userID, err := codec.Verify(cookie.Value)
			if err != nil {
				// The client only ever learns "invalid token"; the
				// expired/tampered distinction stays in the logs.
				if errors.Is(err, ErrTokenExpired) {
					log.Debug().Str("remote", r.RemoteAddr).Msg("Rejected expired token")
				} else {
					log.Debug().Str("remote", r.RemoteAddr).Msg("Rejected token with bad signature or structure")
				}
				reject(w, http.StatusForbidden, "Forbidden: Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
