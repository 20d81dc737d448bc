package handler

import (
	"net/http"

	"scan-kart/internal/model"
	"scan-kart/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles operator login, signup and logout.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

type authStatus struct {
	LoggedIn bool `json:"loggedIn"`
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.service.Login(r.Context(), &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, authStatus{LoggedIn: true})
}

type signupResult struct {
	Created bool `json:"created"`
}

// Signup handles POST /api/auth/signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, signupResult{Created: true})
}

// Logout handles POST /api/auth/logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout()
	writeJSON(w, http.StatusOK, authStatus{LoggedIn: false})
}
