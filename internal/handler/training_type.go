package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/service"
)

// TrainingTypeHandler handles training type catalog endpoints
type TrainingTypeHandler struct {
	svc *service.TrainingTypeService
}

// NewTrainingTypeHandler creates a new training type handler
func NewTrainingTypeHandler(svc *service.TrainingTypeService) *TrainingTypeHandler {
	return &TrainingTypeHandler{svc: svc}
}

// List handles GET /v1/training-types
func (h *TrainingTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, types)
}

// Get handles GET /v1/training-types/{id}
func (h *TrainingTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	trainingType, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trainingType)
}
