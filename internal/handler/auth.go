package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"artzone/internal/httputil"
	"artzone/internal/model"
	"artzone/internal/service"
	"artzone/internal/transport/http/middleware"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Signup handles POST /api/auth/signup
// Creates an account and returns a token with the public user.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteConflict(w, "User already exists")
		default:
			log.Printf("[ERROR] Signup handler: err=%v", err)
			httputil.WriteInternalError(w, "Failed to create account")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// Verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrInvalidCredentials):
			httputil.WriteUnauthorized(w, "Invalid credentials")
		default:
			log.Printf("[ERROR] Login handler: err=%v", err)
			httputil.WriteInternalError(w, "Failed to log in")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// Returns the authenticated user with favorites and cart resolved.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// The token subject no longer exists; treat as unauthenticated.
			httputil.WriteUnauthorized(w, "User not found")
			return
		}
		log.Printf("[ERROR] Me handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to load profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.MeResponse{Status: httputil.StatusSuccess, User: profile})
}
