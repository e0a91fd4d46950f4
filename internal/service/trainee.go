package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// registerAttempts bounds the retry loop when a generated username loses the
// race against a concurrent registration and trips the unique index.
const registerAttempts = 3

// TraineeRepository defines the interface for trainee storage
type TraineeRepository interface {
	Create(ctx context.Context, trainee *model.Trainee) error
	GetByID(ctx context.Context, id string) (*model.Trainee, error)
	GetByUsername(ctx context.Context, username string) (*model.Trainee, error)
	Update(ctx context.Context, trainee *model.Trainee) error
	Delete(ctx context.Context, trainee *model.Trainee) error
	List(ctx context.Context) ([]*model.Trainee, error)
}

// TraineeService handles trainee lifecycle and profile operations
type TraineeService struct {
	userRepo     UserRepository
	traineeRepo  TraineeRepository
	trainerRepo  TrainerRepository
	trainingRepo TrainingRepository
	identity     *IdentityGenerator
	validator    *Validator
}

// TraineeServiceConfig holds configuration for the trainee service
type TraineeServiceConfig struct {
	UserRepo     UserRepository
	TraineeRepo  TraineeRepository
	TrainerRepo  TrainerRepository
	TrainingRepo TrainingRepository
	Identity     *IdentityGenerator
	Validator    *Validator
}

// NewTraineeService creates a new trainee service
func NewTraineeService(cfg TraineeServiceConfig) *TraineeService {
	return &TraineeService{
		userRepo:     cfg.UserRepo,
		traineeRepo:  cfg.TraineeRepo,
		trainerRepo:  cfg.TrainerRepo,
		trainingRepo: cfg.TrainingRepo,
		identity:     cfg.Identity,
		validator:    cfg.Validator,
	}
}

// Register creates a user with generated credentials and a trainee profile
// referencing it. The returned credentials are the only place the generated
// password leaves the service.
func (s *TraineeService) Register(ctx context.Context, req model.RegisterTraineeRequest) (*model.Credentials, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	trainee := &model.Trainee{
		UserID:   user.ID,
		Birthday: req.Birthday,
		Address:  req.Address,
	}
	if err := s.traineeRepo.Create(ctx, trainee); err != nil {
		return nil, fmt.Errorf("create trainee: %w", err)
	}

	return &model.Credentials{Username: user.Username, Password: user.Password}, nil
}

// createUser mints credentials and persists an active user, retrying with a
// freshly generated username if the unique index rejects the first choice.
func (s *TraineeService) createUser(ctx context.Context, firstName, lastName string) (*model.User, error) {
	return createUserWithCredentials(ctx, s.userRepo, s.identity, firstName, lastName)
}

// Create persists a trainee profile for an already existing user
func (s *TraineeService) Create(ctx context.Context, trainee *model.Trainee) (*model.Trainee, error) {
	user, err := s.userRepo.GetByID(ctx, trainee.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTrainee(trainee, user); err != nil {
		return nil, err
	}

	if err := s.traineeRepo.Create(ctx, trainee); err != nil {
		return nil, err
	}
	trainee.User = user
	return trainee, nil
}

// Update persists a trainee's birthday and address. Fails with
// ErrUserNotFound when the owning user no longer resolves.
func (s *TraineeService) Update(ctx context.Context, trainee *model.Trainee) (*model.Trainee, error) {
	user, err := s.userRepo.GetByID(ctx, trainee.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTrainee(trainee, user); err != nil {
		return nil, err
	}

	if err := s.traineeRepo.Update(ctx, trainee); err != nil {
		return nil, err
	}
	trainee.User = user
	return trainee, nil
}

// Get retrieves a trainee by record ID
func (s *TraineeService) Get(ctx context.Context, id string) (*model.Trainee, error) {
	trainee, err := s.traineeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, ErrTraineeNotFound
	}
	return trainee, nil
}

// GetByUsername retrieves a trainee by username
func (s *TraineeService) GetByUsername(ctx context.Context, username string) (*model.Trainee, error) {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, ErrTraineeNotFound
	}
	return trainee, nil
}

// List returns all trainees
func (s *TraineeService) List(ctx context.Context) ([]*model.Trainee, error) {
	return s.traineeRepo.List(ctx)
}

// Delete removes a trainee by username along with their trainings and the
// owning user.
func (s *TraineeService) Delete(ctx context.Context, username string) error {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if trainee == nil {
		return ErrTraineeNotFound
	}
	return s.traineeRepo.Delete(ctx, trainee)
}

// GetProfile returns the trainee read model with the distinct trainers they
// have trained with.
func (s *TraineeService) GetProfile(ctx context.Context, username string) (*model.TraineeProfile, error) {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, ErrTraineeNotFound
	}
	return s.buildProfile(ctx, trainee)
}

// UpdateProfile updates the user fields and trainee fields together and
// returns the refreshed profile.
func (s *TraineeService) UpdateProfile(ctx context.Context, username string, req model.UpdateTraineeRequest) (*model.TraineeProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return nil, ErrTraineeNotFound
	}
	if trainee.User == nil {
		return nil, ErrUserNotFound
	}

	trainee.User.FirstName = req.FirstName
	trainee.User.LastName = req.LastName
	trainee.User.IsActive = req.IsActive
	if err := s.userRepo.Update(ctx, trainee.User); err != nil {
		return nil, err
	}

	trainee.Birthday = req.Birthday
	trainee.Address = req.Address
	if err := s.traineeRepo.Update(ctx, trainee); err != nil {
		return nil, err
	}

	return s.buildProfile(ctx, trainee)
}

// Activate marks the trainee's user account active
func (s *TraineeService) Activate(ctx context.Context, username string) error {
	return s.setActivation(ctx, username, true)
}

// Deactivate marks the trainee's user account inactive
func (s *TraineeService) Deactivate(ctx context.Context, username string) error {
	return s.setActivation(ctx, username, false)
}

// setActivation is the single toggle behind Activate and Deactivate; the flag
// argument decides direction and each call persists exactly one update.
func (s *TraineeService) setActivation(ctx context.Context, username string, active bool) error {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if trainee == nil {
		return ErrTraineeNotFound
	}
	return s.userRepo.SetActive(ctx, trainee.UserID, active)
}

// ChangePassword replaces the trainee's password when currentPassword
// matches the stored one exactly. Returns false without mutation on a missing
// trainee or a mismatch.
func (s *TraineeService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (bool, error) {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if trainee == nil || trainee.User == nil {
		return false, nil
	}
	if trainee.User.Password != currentPassword {
		return false, nil
	}

	if err := s.userRepo.UpdatePassword(ctx, trainee.UserID, newPassword); err != nil {
		return false, err
	}
	return true, nil
}

// GetTrainings lists the trainee's trainings matching the filter. The filter
// name is matched against the trainer's first name; a missing trainee yields
// an empty list rather than an error.
func (s *TraineeService) GetTrainings(ctx context.Context, username string, filter model.TrainingFilter) ([]model.TrainingView, error) {
	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainee == nil {
		return []model.TrainingView{}, nil
	}

	trainings, err := s.trainingRepo.ListByTrainee(ctx, trainee.ID)
	if err != nil {
		return nil, err
	}

	views := make([]model.TrainingView, 0, len(trainings))
	for _, training := range trainings {
		var firstName, counterparty string
		if training.Trainer != nil && training.Trainer.User != nil {
			firstName = training.Trainer.User.FirstName
			counterparty = training.Trainer.User.Username
		}
		if !filter.Matches(training, firstName) {
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

// GetNotAssignedTrainers returns every trainer the named trainee has no
// training with, regardless of activation state. A missing trainee degrades
// to an empty assigned set, so all trainers come back.
func (s *TraineeService) GetNotAssignedTrainers(ctx context.Context, username string) ([]*model.Trainer, error) {
	assigned := make(map[string]struct{})

	trainee, err := s.traineeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if trainee != nil {
		trainings, err := s.trainingRepo.ListByTrainee(ctx, trainee.ID)
		if err != nil {
			return nil, err
		}
		for _, training := range trainings {
			if training.TrainerID != "" {
				assigned[training.TrainerID] = struct{}{}
			}
		}
	}

	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	notAssigned := make([]*model.Trainer, 0, len(trainers))
	for _, trainer := range trainers {
		if _, ok := assigned[trainer.ID]; !ok {
			notAssigned = append(notAssigned, trainer)
		}
	}
	return notAssigned, nil
}

func (s *TraineeService) buildProfile(ctx context.Context, trainee *model.Trainee) (*model.TraineeProfile, error) {
	// A trainee row can outlive its user reference; a dangling reference
	// leaves User unresolved.
	if trainee.User == nil {
		return nil, ErrUserNotFound
	}

	trainings, err := s.trainingRepo.ListByTrainee(ctx, trainee.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	trainers := make([]model.PersonSummary, 0)
	for _, training := range trainings {
		if training.Trainer == nil || training.Trainer.User == nil {
			continue
		}
		if _, ok := seen[training.TrainerID]; ok {
			continue
		}
		seen[training.TrainerID] = struct{}{}
		trainers = append(trainers, model.PersonSummary{
			Username:  training.Trainer.User.Username,
			FirstName: training.Trainer.User.FirstName,
			LastName:  training.Trainer.User.LastName,
		})
	}

	return &model.TraineeProfile{
		FirstName: trainee.User.FirstName,
		LastName:  trainee.User.LastName,
		Birthday:  trainee.Birthday,
		Address:   trainee.Address,
		IsActive:  trainee.User.IsActive,
		Trainers:  trainers,
	}, nil
}

// createUserWithCredentials mints a username and password, then persists an
// active user. Retries on a duplicate username, regenerating against the
// then-current username set.
func createUserWithCredentials(ctx context.Context, users UserRepository, identity *IdentityGenerator, firstName, lastName string) (*model.User, error) {
	var lastErr error
	for attempt := 0; attempt < registerAttempts; attempt++ {
		username, err := identity.Username(ctx, firstName, lastName)
		if err != nil {
			return nil, err
		}
		password, err := identity.Password()
		if err != nil {
			return nil, err
		}

		user := &model.User{
			FirstName: firstName,
			LastName:  lastName,
			Username:  username,
			Password:  password,
			IsActive:  true,
		}
		err = users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, database.ErrDuplicate) {
			return nil, fmt.Errorf("create user: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("create user: %w", lastErr)
}
