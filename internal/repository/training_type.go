package repository

import (
	"context"
	"errors"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// TrainingTypeRepository handles the read-mostly training type catalog
type TrainingTypeRepository struct {
	db database.Database
}

// NewTrainingTypeRepository creates a new training type repository
func NewTrainingTypeRepository(db database.Database) *TrainingTypeRepository {
	return &TrainingTypeRepository{db: db}
}

// List returns the full catalog ordered by name
func (r *TrainingTypeRepository) List(ctx context.Context) ([]*model.TrainingType, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM training_type ORDER BY name`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	types := make([]*model.TrainingType, 0)
	for _, data := range rows(results) {
		types = append(types, parseTrainingTypeRow(data))
	}
	return types, nil
}

// GetByID retrieves a single catalog entry. Returns (nil, nil) when absent.
func (r *TrainingTypeRepository) GetByID(ctx context.Context, id string) (*model.TrainingType, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
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
	return parseTrainingTypeRow(data), nil
}

func parseTrainingTypeRow(data map[string]interface{}) *model.TrainingType {
	if data == nil {
		return nil
	}
	return &model.TrainingType{
		ID:   recordID(data["id"]),
		Name: getString(data, "name"),
	}
}
