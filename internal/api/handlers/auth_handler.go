package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/marinval/userhub-be/internal/auth"
	"github.com/marinval/userhub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration, login, logout and token validation.
type AuthHandler struct {
	service  services.UserServiceProvider
	codec    *auth.TokenCodec
	secure   bool // Secure flag on issued cookies
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, codec *auth.TokenCodec, secure bool) *AuthHandler {
	return &AuthHandler{
		service:  service,
		codec:    codec,
		secure:   secure,
		validate: validator.New(),
	}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles new user registration. On success the new user gets a
// default profile and a session cookie in one go.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Username and password are required")
		return
	}

	user, err := h.service.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			writeMessage(w, http.StatusConflict, false, "Username is already in use. Please choose a different one.")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		writeServerError(w)
		return
	}

	h.issueSession(w, r, user.ID, http.StatusCreated)
}

// Login handles user authentication. Unknown usernames and wrong passwords
// get the exact same response body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Username and password are required")
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			writeMessage(w, http.StatusUnauthorized, false, "Username and/or password is incorrect.")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to look up user during login")
		writeServerError(w)
		return
	}

	h.issueSession(w, r, user.ID, http.StatusOK)
}

// Logout instructs the client to discard its session cookie. There is no
// server-side session state, so this succeeds whether or not a cookie was
// presented.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.secure)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Validate reports that the presented token is valid. Reaching this handler
// at all means the authorization gate already admitted the request.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tokenIsValid": true})
}

// issueSession signs a token for the user and delivers it as a cookie
// alongside the success body.
func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, userID string, status int) {
	token, err := h.codec.Issue(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to sign session token")
		writeServerError(w)
		return
	}

	auth.SetTokenCookie(w, token, h.codec.TTL(), h.secure)
	writeJSON(w, status, map[string]interface{}{
		"success":  true,
		"redirect": "/profile",
	})
}
