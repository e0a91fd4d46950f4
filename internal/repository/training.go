package repository

import (
	"context"
	"errors"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// TrainingRepository handles training session data access
type TrainingRepository struct {
	db database.Database
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db database.Database) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create stores a new training session
func (r *TrainingRepository) Create(ctx context.Context, training *model.Training) error {
	setClause := `
		trainee = type::record($trainee),
		trainer = type::record($trainer),
		name = $name,
		date = <datetime>$date,
		duration = $duration
	`
	vars := map[string]interface{}{
		"trainee":  training.TraineeID,
		"trainer":  training.TrainerID,
		"name":     training.Name,
		"date":     training.Date,
		"duration": training.Duration,
	}
	if training.TypeID != "" {
		setClause += `, type = type::record($type)`
		vars["type"] = training.TypeID
	}

	results, err := r.db.Query(ctx, "CREATE training SET "+setClause, vars)
	if err != nil {
		return err
	}

	created := rows(results)
	if len(created) == 0 {
		return errUnexpectedFormat
	}
	training.ID = recordID(created[0]["id"])
	return nil
}

// GetByID retrieves a training with all participants resolved. Returns
// (nil, nil) when absent.
func (r *TrainingRepository) GetByID(ctx context.Context, id string) (*model.Training, error) {
	query := `SELECT * FROM type::record($id) FETCH trainee, trainee.user, trainer, trainer.user, type`
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
	return parseTrainingRow(data), nil
}

// Update persists a training's name, date, duration and type
func (r *TrainingRepository) Update(ctx context.Context, training *model.Training) error {
	setClause := `
		name = $name,
		date = <datetime>$date,
		duration = $duration
	`
	vars := map[string]interface{}{
		"id":       training.ID,
		"name":     training.Name,
		"date":     training.Date,
		"duration": training.Duration,
	}
	if training.TypeID != "" {
		setClause += `, type = type::record($type)`
		vars["type"] = training.TypeID
	}
	return r.db.Execute(ctx, "UPDATE type::record($id) SET "+setClause, vars)
}

// Delete removes a training by record ID
func (r *TrainingRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

// List returns all trainings with participants resolved, newest first
func (r *TrainingRepository) List(ctx context.Context) ([]*model.Training, error) {
	query := `
		SELECT * FROM training
		ORDER BY date DESC
		FETCH trainee, trainee.user, trainer, trainer.user, type
	`
	return r.list(ctx, query, nil)
}

// ListByTrainee lists a trainee's trainings with the trainer and type
// resolved, newest first.
func (r *TrainingRepository) ListByTrainee(ctx context.Context, traineeID string) ([]*model.Training, error) {
	query := `
		SELECT * FROM training
		WHERE trainee = type::record($trainee)
		ORDER BY date DESC
		FETCH trainer, trainer.user, type
	`
	return r.list(ctx, query, map[string]interface{}{"trainee": traineeID})
}

// ListByTrainer lists a trainer's trainings with the trainee and type
// resolved, newest first.
func (r *TrainingRepository) ListByTrainer(ctx context.Context, trainerID string) ([]*model.Training, error) {
	query := `
		SELECT * FROM training
		WHERE trainer = type::record($trainer)
		ORDER BY date DESC
		FETCH trainee, trainee.user, type
	`
	return r.list(ctx, query, map[string]interface{}{"trainer": trainerID})
}

func (r *TrainingRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Training, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	trainings := make([]*model.Training, 0)
	for _, data := range rows(results) {
		trainings = append(trainings, parseTrainingRow(data))
	}
	return trainings, nil
}

func parseTrainingRow(data map[string]interface{}) *model.Training {
	if data == nil {
		return nil
	}
	training := &model.Training{
		ID:       recordID(data["id"]),
		Name:     getString(data, "name"),
		Date:     getTime(data, "date"),
		Duration: getInt(data, "duration"),
	}
	if traineeData := getMap(data, "trainee"); traineeData != nil {
		training.Trainee = parseTraineeRow(traineeData)
		training.TraineeID = training.Trainee.ID
	} else {
		training.TraineeID = recordID(data["trainee"])
	}
	if trainerData := getMap(data, "trainer"); trainerData != nil {
		training.Trainer = parseTrainerRow(trainerData)
		training.TrainerID = training.Trainer.ID
	} else {
		training.TrainerID = recordID(data["trainer"])
	}
	if typeData := getMap(data, "type"); typeData != nil {
		training.Type = parseTrainingTypeRow(typeData)
		training.TypeID = training.Type.ID
	} else {
		training.TypeID = recordID(data["type"])
	}
	return training
}
