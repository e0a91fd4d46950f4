package service

import (
	"context"
	"fmt"

	"github.com/gymkit/api/internal/model"
)

// TrainingRepository defines the interface for training storage
type TrainingRepository interface {
	Create(ctx context.Context, training *model.Training) error
	GetByID(ctx context.Context, id string) (*model.Training, error)
	Update(ctx context.Context, training *model.Training) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Training, error)
	ListByTrainee(ctx context.Context, traineeID string) ([]*model.Training, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]*model.Training, error)
}

// TrainingService handles training session creation and lookup
type TrainingService struct {
	trainingRepo TrainingRepository
	traineeRepo  TraineeRepository
	trainerRepo  TrainerRepository
	validator    *Validator
}

// TrainingServiceConfig holds configuration for the training service
type TrainingServiceConfig struct {
	TrainingRepo TrainingRepository
	TraineeRepo  TraineeRepository
	TrainerRepo  TrainerRepository
	Validator    *Validator
}

// NewTrainingService creates a new training service
func NewTrainingService(cfg TrainingServiceConfig) *TrainingService {
	return &TrainingService{
		trainingRepo: cfg.TrainingRepo,
		traineeRepo:  cfg.TraineeRepo,
		trainerRepo:  cfg.TrainerRepo,
		validator:    cfg.Validator,
	}
}

// Create persists a training after both participants resolve by username.
// An unresolvable trainee or trainer fails with ErrUnknownTrainee or
// ErrUnknownTrainer and nothing is written.
func (s *TrainingService) Create(ctx context.Context, req model.CreateTrainingRequest) (*model.Training, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	trainee, err := s.traineeRepo.GetByUsername(ctx, req.TraineeUsername)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, ErrUnknownTrainee
	}

	trainer, err := s.trainerRepo.GetByUsername(ctx, req.TrainerUsername)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrUnknownTrainer
	}

	training := &model.Training{
		TraineeID: trainee.ID,
		TrainerID: trainer.ID,
		Name:      req.Name,
		Date:      req.Date,
		Duration:  req.Duration,
		TypeID:    req.TypeID,
	}
	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, fmt.Errorf("create training: %w", err)
	}
	training.Trainee = trainee
	training.Trainer = trainer
	return training, nil
}

// Get retrieves a training by record ID
func (s *TrainingService) Get(ctx context.Context, id string) (*model.Training, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}
	return training, nil
}

// Update replaces a training's name, date, duration and type
func (s *TrainingService) Update(ctx context.Context, id string, req model.UpdateTrainingRequest) (*model.Training, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}

	training.Name = req.Name
	training.Date = req.Date
	training.Duration = req.Duration
	training.TypeID = req.TypeID
	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// Delete removes a training by record ID
func (s *TrainingService) Delete(ctx context.Context, id string) error {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if training == nil {
		return ErrTrainingNotFound
	}
	return s.trainingRepo.Delete(ctx, id)
}

// List returns all trainings
func (s *TrainingService) List(ctx context.Context) ([]*model.Training, error) {
	return s.trainingRepo.List(ctx)
}
