package service

import (
	"context"
	"fmt"

	"github.com/gymkit/api/internal/model"
)

// TrainerRepository defines the interface for trainer storage
type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	GetByID(ctx context.Context, id string) (*model.Trainer, error)
	GetByUsername(ctx context.Context, username string) (*model.Trainer, error)
	Update(ctx context.Context, trainer *model.Trainer) error
	List(ctx context.Context) ([]*model.Trainer, error)
}

// TrainerService handles trainer lifecycle and profile operations
type TrainerService struct {
	userRepo     UserRepository
	trainerRepo  TrainerRepository
	trainingRepo TrainingRepository
	typeRepo     TrainingTypeRepository
	identity     *IdentityGenerator
	validator    *Validator
}

// TrainerServiceConfig holds configuration for the trainer service
type TrainerServiceConfig struct {
	UserRepo     UserRepository
	TrainerRepo  TrainerRepository
	TrainingRepo TrainingRepository
	TypeRepo     TrainingTypeRepository
	Identity     *IdentityGenerator
	Validator    *Validator
}

// NewTrainerService creates a new trainer service
func NewTrainerService(cfg TrainerServiceConfig) *TrainerService {
	return &TrainerService{
		userRepo:     cfg.UserRepo,
		trainerRepo:  cfg.TrainerRepo,
		trainingRepo: cfg.TrainingRepo,
		typeRepo:     cfg.TypeRepo,
		identity:     cfg.Identity,
		validator:    cfg.Validator,
	}
}

// Register mints credentials, creates an active user and the trainer profile
// referencing it, and returns the generated credentials.
func (s *TrainerService) Register(ctx context.Context, req model.RegisterTrainerRequest) (*model.Credentials, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	trainingType, err := s.typeRepo.GetByID(ctx, req.SpecializationID)
	if err != nil {
		return nil, err
	}
	if trainingType == nil {
		return nil, ErrTrainingTypeNotFound
	}

	user, err := createUserWithCredentials(ctx, s.userRepo, s.identity, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if _, err := s.CreateProfile(ctx, trainingType.ID, user.ID); err != nil {
		return nil, err
	}
	return &model.Credentials{Username: user.Username, Password: user.Password}, nil
}

// CreateProfile resolves a training type and user and persists a trainer
// linking both. Used by the registration flow.
func (s *TrainerService) CreateProfile(ctx context.Context, trainingTypeID, userID string) (*model.Trainer, error) {
	trainingType, err := s.typeRepo.GetByID(ctx, trainingTypeID)
	if err != nil {
		return nil, err
	}
	if trainingType == nil {
		return nil, ErrTrainingTypeNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	trainer := &model.Trainer{
		UserID:           userID,
		SpecializationID: trainingType.ID,
	}
	if err := s.validator.ValidateTrainer(trainer, user); err != nil {
		return nil, err
	}

	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, fmt.Errorf("create trainer: %w", err)
	}
	trainer.User = user
	trainer.Specialization = trainingType
	return trainer, nil
}

// Create persists a trainer profile for an already existing user
func (s *TrainerService) Create(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error) {
	user, err := s.userRepo.GetByID(ctx, trainer.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTrainer(trainer, user); err != nil {
		return nil, err
	}

	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}
	trainer.User = user
	return trainer, nil
}

// Update persists a trainer's specialization. Fails with ErrUserNotFound
// when the owning user no longer resolves and with ErrSpecializationRequired
// when the specialization reference is empty.
func (s *TrainerService) Update(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error) {
	user, err := s.userRepo.GetByID(ctx, trainer.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTrainer(trainer, user); err != nil {
		return nil, err
	}

	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		return nil, err
	}
	trainer.User = user
	return trainer, nil
}

// Get retrieves a trainer by record ID
func (s *TrainerService) Get(ctx context.Context, id string) (*model.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}
	return trainer, nil
}

// GetByUsername retrieves a trainer by username
func (s *TrainerService) GetByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}
	return trainer, nil
}

// List returns all trainers
func (s *TrainerService) List(ctx context.Context) ([]*model.Trainer, error) {
	return s.trainerRepo.List(ctx)
}

// Activate marks the trainer's user account active
func (s *TrainerService) Activate(ctx context.Context, username string) error {
	return s.setActivation(ctx, username, true)
}

// Deactivate marks the trainer's user account inactive
func (s *TrainerService) Deactivate(ctx context.Context, username string) error {
	return s.setActivation(ctx, username, false)
}

// setActivation is the single toggle behind Activate and Deactivate
func (s *TrainerService) setActivation(ctx context.Context, username string, active bool) error {
	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if trainer == nil {
		return ErrTrainerNotFound
	}
	return s.userRepo.SetActive(ctx, trainer.UserID, active)
}

// ChangePassword replaces the trainer's password when currentPassword
// matches the stored one exactly. Returns false without mutation on a missing
// trainer or a mismatch.
func (s *TrainerService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (bool, error) {
	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if trainer == nil || trainer.User == nil {
		return false, nil
	}
	if trainer.User.Password != currentPassword {
		return false, nil
	}

	if err := s.userRepo.UpdatePassword(ctx, trainer.UserID, newPassword); err != nil {
		return false, err
	}
	return true, nil
}

// GetTrainings lists the trainer's trainings matching the filter. The filter
// name is matched against the trainee's username; a missing trainer yields an
// empty list rather than an error.
func (s *TrainerService) GetTrainings(ctx context.Context, username string, filter model.TrainingFilter) ([]model.TrainingView, error) {
	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return []model.TrainingView{}, nil
	}

	trainings, err := s.trainingRepo.ListByTrainer(ctx, trainer.ID)
	if err != nil {
		return nil, err
	}

	views := make([]model.TrainingView, 0, len(trainings))
	for _, training := range trainings {
		var counterparty string
		if training.Trainee != nil && training.Trainee.User != nil {
			counterparty = training.Trainee.User.Username
		}
		if !filter.Matches(training, counterparty) {
			continue
		}
		views = append(views, model.TrainingView{
			Name:         training.Name,
			Date:         training.Date,
			Type:         training.Type,
			Duration:     training.Duration,
			Counterparty: counterparty,
		})
	}
	return views, nil
}

// Profile returns the trainer read model with the distinct trainees they
// have trained.
func (s *TrainerService) Profile(ctx context.Context, username string) (*model.TrainerProfile, error) {
	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}
	return s.buildProfile(ctx, trainer, trainer.Specialization)
}

// UpdateProfile updates the trainer's user fields and returns the refreshed
// profile. The trainer record is checked before anything is persisted, so a
// missing profile cannot leave a half-updated user behind.
//
// The caller-supplied specialization is echoed back in the returned profile
// but deliberately not written to storage; plain Update is the persisted
// path for specialization changes. The echo is resolved against the catalog
// first, so an unknown specialization ID falls back to the stored one
// instead of surfacing a reference the catalog does not contain.
func (s *TrainerService) UpdateProfile(ctx context.Context, username string, req model.UpdateTrainerProfileRequest) (*model.TrainerProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	trainer, err := s.trainerRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.IsActive = req.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	trainer.User = user

	specialization := trainer.Specialization
	if req.SpecializationID != "" {
		echoed, err := s.typeRepo.GetByID(ctx, req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if echoed != nil {
			specialization = echoed
		}
	}
	return s.buildProfile(ctx, trainer, specialization)
}

func (s *TrainerService) buildProfile(ctx context.Context, trainer *model.Trainer, specialization *model.TrainingType) (*model.TrainerProfile, error) {
	// A trainer row can outlive its user reference; a dangling reference
	// leaves User unresolved.
	if trainer.User == nil {
		return nil, ErrUserNotFound
	}

	trainings, err := s.trainingRepo.ListByTrainer(ctx, trainer.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	trainees := make([]model.PersonSummary, 0)
	for _, training := range trainings {
		if training.Trainee == nil || training.Trainee.User == nil {
			continue
		}
		if _, ok := seen[training.TraineeID]; ok {
			continue
		}
		seen[training.TraineeID] = struct{}{}
		trainees = append(trainees, model.PersonSummary{
			Username:  training.Trainee.User.Username,
			FirstName: training.Trainee.User.FirstName,
			LastName:  training.Trainee.User.LastName,
		})
	}

	return &model.TrainerProfile{
		FirstName:      trainer.User.FirstName,
		LastName:       trainer.User.LastName,
		Specialization: specialization,
		IsActive:       trainer.User.IsActive,
		Trainees:       trainees,
	}, nil
}
