package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymkit/api/internal/model"
)

func newTestTrainerService(users *mockUserRepo, trainers *mockTrainerRepo, trainings *mockTrainingRepo, types *mockTypeRepo) *TrainerService {
	if users == nil {
		users = &mockUserRepo{}
	}
	if trainers == nil {
		trainers = &mockTrainerRepo{}
	}
	if trainings == nil {
		trainings = &mockTrainingRepo{}
	}
	if types == nil {
		types = &mockTypeRepo{}
	}
	return NewTrainerService(TrainerServiceConfig{
		UserRepo:     users,
		TrainerRepo:  trainers,
		TrainingRepo: trainings,
		TypeRepo:     types,
		Identity:     NewIdentityGenerator(users),
		Validator:    NewValidator(),
	})
}

func yogaType() *model.TrainingType {
	return &model.TrainingType{ID: "training_type:yoga", Name: "Yoga"}
}

func testTrainer(username string) *model.Trainer {
	return &model.Trainer{
		ID:               "trainer:1",
		UserID:           "user:1",
		SpecializationID: "training_type:strength",
		Specialization:   &model.TrainingType{ID: "training_type:strength", Name: "Strength"},
		User: &model.User{
			ID:        "user:1",
			FirstName: "Anna",
			LastName:  "Coach",
			Username:  username,
			Password:  "oldpassword",
			IsActive:  true,
		},
	}
}

// ============================================================================
// Register Tests
// ============================================================================

func TestTrainerRegister_FirstJaneDoe_GetsBaseUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:new"
			return nil
		},
	}
	types := &mockTypeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.TrainingType, error) {
			return yogaType(), nil
		},
	}
	svc := newTestTrainerService(users, nil, nil, types)

	creds, err := svc.Register(ctx, model.RegisterTrainerRequest{
		FirstName:        "Jane",
		LastName:         "Doe",
		SpecializationID: "training_type:yoga",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Username != "jane.doe" {
		t.Errorf("expected jane.doe, got %q", creds.Username)
	}
	if len(creds.Password) != passwordLength {
		t.Errorf("expected password of length %d, got %d", passwordLength, len(creds.Password))
	}
}

func TestTrainerRegister_SecondJaneDoe_GetsSuffixedUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Stateful mock: registered usernames accumulate so the second Jane Doe
	// collides with the first.
	registered := make([]string, 0)
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:" + user.Username
			registered = append(registered, user.Username)
			return nil
		},
		usernamesWithPrefixFunc: func(ctx context.Context, prefix string) ([]string, error) {
			return append([]string(nil), registered...), nil
		},
	}
	types := &mockTypeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.TrainingType, error) {
			return yogaType(), nil
		},
	}
	svc := newTestTrainerService(users, nil, nil, types)

	req := model.RegisterTrainerRequest{FirstName: "Jane", LastName: "Doe", SpecializationID: "training_type:yoga"}

	first, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Username != "jane.doe" {
		t.Errorf("expected first registration jane.doe, got %q", first.Username)
	}
	if second.Username != "jane.doe1" {
		t.Errorf("expected second registration jane.doe1, got %q", second.Username)
	}
}

func TestTrainerRegister_UnknownType_NoUserCreated(t *testing.T) {
	t.Parallel()

	created := false
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = true
			return nil
		},
	}
	svc := newTestTrainerService(users, nil, nil, nil)

	_, err := svc.Register(context.Background(), model.RegisterTrainerRequest{
		FirstName:        "Jane",
		LastName:         "Doe",
		SpecializationID: "training_type:ghost",
	})
	if !errors.Is(err, ErrTrainingTypeNotFound) {
		t.Errorf("expected ErrTrainingTypeNotFound, got %v", err)
	}
	if created {
		t.Error("expected no user write when the specialization does not resolve")
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestTrainerUpdate_MissingUser_ReturnsUserNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestTrainerService(nil, nil, nil, nil)

	_, err := svc.Update(context.Background(), &model.Trainer{
		ID:               "trainer:1",
		UserID:           "user:gone",
		SpecializationID: "training_type:yoga",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTrainerUpdate_EmptySpecialization_Fails(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, FirstName: "Anna", LastName: "Coach"}, nil
		},
	}
	persisted := false
	trainers := &mockTrainerRepo{
		updateFunc: func(ctx context.Context, trainer *model.Trainer) error {
			persisted = true
			return nil
		},
	}
	svc := newTestTrainerService(users, trainers, nil, nil)

	_, err := svc.Update(context.Background(), &model.Trainer{ID: "trainer:1", UserID: "user:1"})
	if !errors.Is(err, ErrSpecializationRequired) {
		t.Errorf("expected ErrSpecializationRequired, got %v", err)
	}
	if persisted {
		t.Error("expected no trainer write without a specialization")
	}
}

// ============================================================================
// UpdateProfile Tests
// ============================================================================

func TestUpdateProfile_MissingTrainer_UserLeftUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	userUpdated := false
	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{ID: "user:1", Username: username, FirstName: "Anna", LastName: "Coach"}, nil
		},
		updateFunc: func(ctx context.Context, user *model.User) error {
			userUpdated = true
			return nil
		},
	}
	svc := newTestTrainerService(users, nil, nil, nil)

	_, err := svc.UpdateProfile(ctx, "anna.coach", model.UpdateTrainerProfileRequest{
		FirstName: "Anna",
		LastName:  "Coacher",
	})
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("expected ErrTrainerNotFound, got %v", err)
	}
	if userUpdated {
		t.Error("expected the user update to be withheld when the trainer profile is missing")
	}
}

func TestUpdateProfile_MissingUser_ReturnsUserNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestTrainerService(nil, nil, nil, nil)

	_, err := svc.UpdateProfile(context.Background(), "ghost", model.UpdateTrainerProfileRequest{
		FirstName: "Anna",
		LastName:  "Coach",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile_SpecializationEchoedNotPersisted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return testTrainer(username).User, nil
		},
	}
	trainerPersisted := false
	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			return testTrainer(username), nil
		},
		updateFunc: func(ctx context.Context, trainer *model.Trainer) error {
			trainerPersisted = true
			return nil
		},
	}
	types := &mockTypeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.TrainingType, error) {
			return yogaType(), nil
		},
	}
	svc := newTestTrainerService(users, trainers, nil, types)

	profile, err := svc.UpdateProfile(ctx, "anna.coach", model.UpdateTrainerProfileRequest{
		FirstName:        "Anna",
		LastName:         "Coach",
		SpecializationID: "training_type:yoga",
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Specialization == nil || profile.Specialization.ID != "training_type:yoga" {
		t.Error("expected the caller-supplied specialization echoed in the profile")
	}
	if trainerPersisted {
		t.Error("expected the specialization to stay unpersisted in UpdateProfile")
	}
}

func TestUpdateProfile_UnknownSpecializationFallsBackToStored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return testTrainer(username).User, nil
		},
	}
	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			return testTrainer(username), nil
		},
	}
	types := &mockTypeRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.TrainingType, error) {
			return nil, nil // not in the catalog
		},
	}
	svc := newTestTrainerService(users, trainers, nil, types)

	profile, err := svc.UpdateProfile(ctx, "anna.coach", model.UpdateTrainerProfileRequest{
		FirstName:        "Anna",
		LastName:         "Coach",
		SpecializationID: "training_type:bogus",
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Specialization == nil || profile.Specialization.ID != "training_type:strength" {
		t.Error("expected the stored specialization when the supplied one does not resolve")
	}
}

func TestUpdateProfile_PersistsUserFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var updated *model.User
	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return testTrainer(username).User, nil
		},
		updateFunc: func(ctx context.Context, user *model.User) error {
			updated = user
			return nil
		},
	}
	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			return testTrainer(username), nil
		},
	}
	svc := newTestTrainerService(users, trainers, nil, nil)

	_, err := svc.UpdateProfile(ctx, "anna.coach", model.UpdateTrainerProfileRequest{
		FirstName: "Annabel",
		LastName:  "Coacher",
		IsActive:  false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the user update to be persisted")
	}
	if updated.FirstName != "Annabel" || updated.LastName != "Coacher" || updated.IsActive {
		t.Errorf("unexpected persisted user fields: %+v", updated)
	}
}

// ============================================================================
// Profile / GetTrainings Tests
// ============================================================================

func TestTrainerProfile_Missing_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestTrainerService(nil, nil, nil, nil)

	_, err := svc.Profile(context.Background(), "ghost")
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("expected ErrTrainerNotFound, got %v", err)
	}
}

func TestTrainerProfile_DanglingUser_ReturnsUserNotFound(t *testing.T) {
	t.Parallel()

	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			trainer := testTrainer(username)
			trainer.User = nil // user reference did not resolve
			return trainer, nil
		},
	}
	svc := newTestTrainerService(nil, trainers, nil, nil)

	_, err := svc.Profile(context.Background(), "anna.coach")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTrainerProfile_ListsDistinctTrainees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			return testTrainer(username), nil
		},
	}
	trainee := &model.Trainee{
		ID:     "trainee:1",
		UserID: "user:9",
		User:   &model.User{ID: "user:9", Username: "john.smith", FirstName: "John", LastName: "Smith"},
	}
	trainings := &mockTrainingRepo{
		listByTrainerFunc: func(ctx context.Context, trainerID string) ([]*model.Training, error) {
			return []*model.Training{
				{TraineeID: "trainee:1", TrainerID: trainerID, Trainee: trainee, Date: date(2023, time.May, 1)},
				{TraineeID: "trainee:1", TrainerID: trainerID, Trainee: trainee, Date: date(2023, time.May, 8)},
			}, nil
		},
	}
	svc := newTestTrainerService(nil, trainers, trainings, nil)

	profile, err := svc.Profile(ctx, "anna.coach")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.Trainees) != 1 {
		t.Fatalf("expected 1 distinct trainee, got %d", len(profile.Trainees))
	}
	if profile.Trainees[0].Username != "john.smith" {
		t.Errorf("expected john.smith, got %q", profile.Trainees[0].Username)
	}
}

func TestTrainerGetTrainings_MatchesTraineeUsernameCaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			return testTrainer(username), nil
		},
	}
	trainings := &mockTrainingRepo{
		listByTrainerFunc: func(ctx context.Context, trainerID string) ([]*model.Training, error) {
			return []*model.Training{
				{
					TrainerID: trainerID,
					TraineeID: "trainee:1",
					Name:      "session",
					Date:      date(2023, time.June, 2),
					Trainee: &model.Trainee{
						ID:   "trainee:1",
						User: &model.User{Username: "John.Smith", FirstName: "John"},
					},
				},
			}, nil
		},
	}
	svc := newTestTrainerService(nil, trainers, trainings, nil)

	views, err := svc.GetTrainings(ctx, "anna.coach", model.TrainingFilter{Name: "john.smith"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected the trainee username to match case-insensitively, got %d results", len(views))
	}
}

// ============================================================================
// ChangePassword Tests
// ============================================================================

func TestTrainerChangePassword_Contract(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	persisted := 0
	users := &mockUserRepo{
		updatePasswordFunc: func(ctx context.Context, id, password string) error {
			persisted++
			return nil
		},
	}
	trainers := &mockTrainerRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.Trainer, error) {
			if username == "ghost" {
				return nil, nil
			}
			return testTrainer(username), nil
		},
	}
	svc := newTestTrainerService(users, trainers, nil, nil)

	ok, err := svc.ChangePassword(ctx, "anna.coach", "oldpassword", "newpassword")
	if err != nil || !ok {
		t.Fatalf("expected success with the matching current password, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.ChangePassword(ctx, "anna.coach", "wrong", "newpassword")
	if err != nil || ok {
		t.Fatalf("expected failure on mismatch, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.ChangePassword(ctx, "ghost", "oldpassword", "newpassword")
	if err != nil || ok {
		t.Fatalf("expected failure for a missing trainer, got ok=%v err=%v", ok, err)
	}
	if persisted != 1 {
		t.Errorf("expected exactly one persisted password write, got %d", persisted)
	}
}
