package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/internal/service"
)

// TraineeHandler handles trainee endpoints
type TraineeHandler struct {
	svc *service.TraineeService
}

// NewTraineeHandler creates a new trainee handler
func NewTraineeHandler(svc *service.TraineeService) *TraineeHandler {
	return &TraineeHandler{svc: svc}
}

// Register handles POST /v1/trainees. This is the only endpoint that
// returns the generated credentials.
func (h *TraineeHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterTraineeRequest
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

// List handles GET /v1/trainees
func (h *TraineeHandler) List(w http.ResponseWriter, r *http.Request) {
	trainees, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainees)
}

// GetProfile handles GET /v1/trainees/{username}
func (h *TraineeHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /v1/trainees/{username}
func (h *TraineeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTraineeRequest
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

// Delete handles DELETE /v1/trainees/{username}. The trainee, its user and
// all its trainings go in one transaction.
func (h *TraineeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("username")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// GetTrainings handles GET /v1/trainees/{username}/trainings
func (h *TraineeHandler) GetTrainings(w http.ResponseWriter, r *http.Request) {
	filter, problem := parseTrainingFilter(r, "trainer_name")
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

// GetNotAssignedTrainers handles GET /v1/trainees/{username}/not-assigned-trainers
func (h *TraineeHandler) GetNotAssignedTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.svc.GetNotAssignedTrainers(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainers)
}

// SetActivation handles PATCH /v1/trainees/{username}/activation
func (h *TraineeHandler) SetActivation(w http.ResponseWriter, r *http.Request) {
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

// ChangePassword handles PUT /v1/trainees/{username}/password
func (h *TraineeHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
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
