package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/middleware"
	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// refreshRequest is the payload for token refresh and logout.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, result)
}

// Refresh handles POST /v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.RefreshToken == "" {
		WriteError(w, model.NewBadRequestError("refresh_token is required"))
		return
	}

	pair, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, pair)
}

// Logout handles POST /v1/auth/logout. It revokes every refresh token of
// the authenticated user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.svc.Logout(r.Context(), userID); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}
