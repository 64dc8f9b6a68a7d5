package auth

import (
	"net/http"
	"time"
)

// CookieName is the cookie the client presents its session token in.
const CookieName = "auth_token"

// SetTokenCookie attaches the session token to the response. HttpOnly keeps
// it away from scripts; the Secure flag follows the deployment environment.
func SetTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearTokenCookie instructs the client to discard the session cookie. The
// attributes mirror SetTokenCookie so the discard actually matches.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}
