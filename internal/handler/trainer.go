package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/internal/service"
)

// TrainerHandler handles trainer endpoints
type TrainerHandler struct {
	svc *service.TrainerService
}

// NewTrainerHandler creates a new trainer handler
func NewTrainerHandler(svc *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{svc: svc}
}

// Register handles POST /v1/trainers
func (h *TrainerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterTrainerRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	creds, err := h.svc.Register(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, creds)
}

// List handles GET /v1/trainers
func (h *TrainerHandler) List(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainers)
}

// GetProfile handles GET /v1/trainers/{username}
func (h *TrainerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /v1/trainers/{username}
func (h *TrainerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTrainerProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), r.PathValue("username"), req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, profile)
}

// GetTrainings handles GET /v1/trainers/{username}/trainings
func (h *TrainerHandler) GetTrainings(w http.ResponseWriter, r *http.Request) {
	filter, problem := parseTrainingFilter(r, "trainee_name")
	if problem != nil {
		WriteError(w, problem)
		return
	}

	trainings, err := h.svc.GetTrainings(r.Context(), r.PathValue("username"), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainings)
}

// SetActivation handles PATCH /v1/trainers/{username}/activation
func (h *TrainerHandler) SetActivation(w http.ResponseWriter, r *http.Request) {
	var req model.ActivationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.IsActive == nil {
		WriteError(w, model.NewBadRequestError("is_active is required"))
		return
	}

	username := r.PathValue("username")
	var err error
	if *req.IsActive {
		err = h.svc.Activate(r.Context(), username)
	} else {
		err = h.svc.Deactivate(r.Context(), username)
	}
	if err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// ChangePassword handles PUT /v1/trainers/{username}/password
func (h *TrainerHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ok, err := h.svc.ChangePassword(r.Context(), r.PathValue("username"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		handleError(w, err)
		return
	}
	if !ok {
		WriteError(w, model.NewUnauthorizedError("current password does not match"))
		return
	}

	WriteNoContent(w)
}
