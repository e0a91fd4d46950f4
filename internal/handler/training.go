package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/internal/service"
)

// TrainingHandler handles training endpoints
type TrainingHandler struct {
	svc *service.TrainingService
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(svc *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{svc: svc}
}

// Create handles POST /v1/trainings
func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTrainingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	training, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, training)
}

// Get handles GET /v1/trainings/{id}
func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	training, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, training)
}

// Update handles PUT /v1/trainings/{id}
func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTrainingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	training, err := h.svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, training)
}

// Delete handles DELETE /v1/trainings/{id}
func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// List handles GET /v1/trainings
func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainings)
}
