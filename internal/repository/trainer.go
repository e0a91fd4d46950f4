package repository

import (
	"context"
	"errors"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// TrainerRepository handles trainer profile data access
type TrainerRepository struct {
	db database.Database
}

// NewTrainerRepository creates a new trainer repository
func NewTrainerRepository(db database.Database) *TrainerRepository {
	return &TrainerRepository{db: db}
}

// Create stores a new trainer profile linked to an existing user and a
// training type from the catalog.
func (r *TrainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	query := `
		CREATE trainer SET
			user = type::record($user),
			specialization = type::record($specialization)
	`
	vars := map[string]interface{}{
		"user":           trainer.UserID,
		"specialization": trainer.SpecializationID,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := rows(results)
	if len(created) == 0 {
		return errUnexpectedFormat
	}
	trainer.ID = recordID(created[0]["id"])
	return nil
}

// GetByID retrieves a trainer with its user and specialization by record ID.
// Returns (nil, nil) when absent.
func (r *TrainerRepository) GetByID(ctx context.Context, id string) (*model.Trainer, error) {
	query := `SELECT * FROM type::record($id) FETCH user, specialization`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	data, err := row(result)
	if err != nil {
		return nil, err
	}
	return parseTrainerRow(data), nil
}

// GetByUsername retrieves a trainer with its user and specialization by the
// user's username. Returns (nil, nil) when absent.
func (r *TrainerRepository) GetByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	query := `SELECT * FROM trainer WHERE user.username = $username LIMIT 1 FETCH user, specialization`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"username": username})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	data, err := row(result)
	if err != nil {
		return nil, err
	}
	return parseTrainerRow(data), nil
}

// Update persists a trainer's specialization
func (r *TrainerRepository) Update(ctx context.Context, trainer *model.Trainer) error {
	query := `UPDATE type::record($id) SET specialization = type::record($specialization)`
	vars := map[string]interface{}{
		"id":             trainer.ID,
		"specialization": trainer.SpecializationID,
	}
	return r.db.Execute(ctx, query, vars)
}

// List returns all trainers with users and specializations resolved
func (r *TrainerRepository) List(ctx context.Context) ([]*model.Trainer, error) {
	query := `SELECT * FROM trainer ORDER BY user.username FETCH user, specialization`
	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	trainers := make([]*model.Trainer, 0)
	for _, data := range rows(results) {
		trainers = append(trainers, parseTrainerRow(data))
	}
	return trainers, nil
}

func parseTrainerRow(data map[string]interface{}) *model.Trainer {
	if data == nil {
		return nil
	}
	trainer := &model.Trainer{
		ID: recordID(data["id"]),
	}
	if userData := getMap(data, "user"); userData != nil {
		trainer.User = parseUserRow(userData)
		trainer.UserID = trainer.User.ID
	} else {
		trainer.UserID = recordID(data["user"])
	}
	if specData := getMap(data, "specialization"); specData != nil {
		trainer.Specialization = parseTrainingTypeRow(specData)
		trainer.SpecializationID = trainer.Specialization.ID
	} else {
		trainer.SpecializationID = recordID(data["specialization"])
	}
	return trainer
}
