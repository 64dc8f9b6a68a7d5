package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"
)

// protectedEcho is a stand-in business handler that reports the subject id
// the gate attached.
func protectedEcho(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		require.True(t, ok, "gate admitted the request without a user id in context")
		require.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("admitted"))
	})
}

func TestMiddleware_NoCookie(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	handler := Middleware(codec)(protectedEcho(t, ""))

	apitest.Handler(handler).
		Get("/").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"success": false, "message": "Access Denied: No token provided"}`).
		End()
}

func TestMiddleware_InvalidToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	handler := Middleware(codec)(protectedEcho(t, ""))

	apitest.Handler(handler).
		Get("/").
		Cookie(CookieName, "garbage.token.value").
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"success": false, "message": "Forbidden: Invalid token"}`).
		End()
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Second)
	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	handler := Middleware(codec)(protectedEcho(t, ""))

	// Expired and tampered tokens are indistinguishable to the client.
	apitest.Handler(handler).
		Get("/").
		Cookie(CookieName, tok).
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"success": false, "message": "Forbidden: Invalid token"}`).
		End()
}

func TestMiddleware_ValidToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	tok, err := codec.Issue("user-42")
	require.NoError(t, err)

	handler := Middleware(codec)(protectedEcho(t, "user-42"))

	apitest.Handler(handler).
		Get("/").
		Cookie(CookieName, tok).
		Expect(t).
		Status(http.StatusOK).
		Body("admitted").
		End()
}
