package service

import (
	"context"

	"github.com/gymkit/api/internal/model"
)

// TrainingTypeRepository defines the interface for the training type catalog
type TrainingTypeRepository interface {
	List(ctx context.Context) ([]*model.TrainingType, error)
	GetByID(ctx context.Context, id string) (*model.TrainingType, error)
}

// TrainingTypeService exposes the read-only training type catalog
type TrainingTypeService struct {
	typeRepo TrainingTypeRepository
}

// NewTrainingTypeService creates a new training type service
func NewTrainingTypeService(typeRepo TrainingTypeRepository) *TrainingTypeService {
	return &TrainingTypeService{typeRepo: typeRepo}
}

// List returns the full catalog
func (s *TrainingTypeService) List(ctx context.Context) ([]*model.TrainingType, error) {
	return s.typeRepo.List(ctx)
}

// Get retrieves a single catalog entry
func (s *TrainingTypeService) Get(ctx context.Context, id string) (*model.TrainingType, error) {
	trainingType, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainingType == nil {
		return nil, ErrTrainingTypeNotFound
	}
	return trainingType, nil
}
