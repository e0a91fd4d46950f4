package service

import (
	"context"

	"github.com/gymkit/api/internal/model"
)

// Func-field mocks shared by the service tests. A nil field means the call
// succeeds with zero values.

type mockUserRepo struct {
	createFunc              func(ctx context.Context, user *model.User) error
	getByIDFunc             func(ctx context.Context, id string) (*model.User, error)
	getByUsernameFunc       func(ctx context.Context, username string) (*model.User, error)
	updateFunc              func(ctx context.Context, user *model.User) error
	updatePasswordFunc      func(ctx context.Context, id, password string) error
	setActiveFunc           func(ctx context.Context, id string, active bool) error
	usernamesWithPrefixFunc func(ctx context.Context, prefix string) ([]string, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, password string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, password)
	}
	return nil
}

func (m *mockUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *mockUserRepo) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	if m.usernamesWithPrefixFunc != nil {
		return m.usernamesWithPrefixFunc(ctx, prefix)
	}
	return nil, nil
}

type mockTraineeRepo struct {
	createFunc        func(ctx context.Context, trainee *model.Trainee) error
	getByIDFunc       func(ctx context.Context, id string) (*model.Trainee, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.Trainee, error)
	updateFunc        func(ctx context.Context, trainee *model.Trainee) error
	deleteFunc        func(ctx context.Context, trainee *model.Trainee) error
	listFunc          func(ctx context.Context) ([]*model.Trainee, error)
}

func (m *mockTraineeRepo) Create(ctx context.Context, trainee *model.Trainee) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, trainee)
	}
	return nil
}

func (m *mockTraineeRepo) GetByID(ctx context.Context, id string) (*model.Trainee, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTraineeRepo) GetByUsername(ctx context.Context, username string) (*model.Trainee, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTraineeRepo) Update(ctx context.Context, trainee *model.Trainee) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, trainee)
	}
	return nil
}

func (m *mockTraineeRepo) Delete(ctx context.Context, trainee *model.Trainee) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, trainee)
	}
	return nil
}

func (m *mockTraineeRepo) List(ctx context.Context) ([]*model.Trainee, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockTrainerRepo struct {
	createFunc        func(ctx context.Context, trainer *model.Trainer) error
	getByIDFunc       func(ctx context.Context, id string) (*model.Trainer, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.Trainer, error)
	updateFunc        func(ctx context.Context, trainer *model.Trainer) error
	listFunc          func(ctx context.Context) ([]*model.Trainer, error)
}

func (m *mockTrainerRepo) Create(ctx context.Context, trainer *model.Trainer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, trainer)
	}
	return nil
}

func (m *mockTrainerRepo) GetByID(ctx context.Context, id string) (*model.Trainer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTrainerRepo) GetByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTrainerRepo) Update(ctx context.Context, trainer *model.Trainer) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, trainer)
	}
	return nil
}

func (m *mockTrainerRepo) List(ctx context.Context) ([]*model.Trainer, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockTrainingRepo struct {
	createFunc        func(ctx context.Context, training *model.Training) error
	getByIDFunc       func(ctx context.Context, id string) (*model.Training, error)
	updateFunc        func(ctx context.Context, training *model.Training) error
	deleteFunc        func(ctx context.Context, id string) error
	listFunc          func(ctx context.Context) ([]*model.Training, error)
	listByTraineeFunc func(ctx context.Context, traineeID string) ([]*model.Training, error)
	listByTrainerFunc func(ctx context.Context, trainerID string) ([]*model.Training, error)
}

func (m *mockTrainingRepo) Create(ctx context.Context, training *model.Training) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, training)
	}
	return nil
}

func (m *mockTrainingRepo) GetByID(ctx context.Context, id string) (*model.Training, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTrainingRepo) Update(ctx context.Context, training *model.Training) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, training)
	}
	return nil
}

func (m *mockTrainingRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTrainingRepo) List(ctx context.Context) ([]*model.Training, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTrainingRepo) ListByTrainee(ctx context.Context, traineeID string) ([]*model.Training, error) {
	if m.listByTraineeFunc != nil {
		return m.listByTraineeFunc(ctx, traineeID)
	}
	return nil, nil
}

func (m *mockTrainingRepo) ListByTrainer(ctx context.Context, trainerID string) ([]*model.Training, error) {
	if m.listByTrainerFunc != nil {
		return m.listByTrainerFunc(ctx, trainerID)
	}
	return nil, nil
}

type mockTypeRepo struct {
	listFunc    func(ctx context.Context) ([]*model.TrainingType, error)
	getByIDFunc func(ctx context.Context, id string) (*model.TrainingType, error)
}

func (m *mockTypeRepo) List(ctx context.Context) ([]*model.TrainingType, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTypeRepo) GetByID(ctx context.Context, id string) (*model.TrainingType, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockTokenRepo struct {
	createFunc           func(ctx context.Context, token *RefreshToken) error
	getByIDFunc          func(ctx context.Context, id string) (*RefreshToken, error)
	revokeFunc           func(ctx context.Context, id string) error
	revokeAllForUserFunc func(ctx context.Context, userID string) error
	deleteExpiredFunc    func(ctx context.Context) error
}

func (m *mockTokenRepo) Create(ctx context.Context, token *RefreshToken) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, token)
	}
	return nil
}

func (m *mockTokenRepo) GetByID(ctx context.Context, id string) (*RefreshToken, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTokenRepo) Revoke(ctx context.Context, id string) error {
	if m.revokeFunc != nil {
		return m.revokeFunc(ctx, id)
	}
	return nil
}

func (m *mockTokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	if m.revokeAllForUserFunc != nil {
		return m.revokeAllForUserFunc(ctx, userID)
	}
	return nil
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return nil
}
