package repository

import (
	"context"
	"errors"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// TraineeRepository handles trainee profile data access
type TraineeRepository struct {
	db database.Database
}

// NewTraineeRepository creates a new trainee repository
func NewTraineeRepository(db database.Database) *TraineeRepository {
	return &TraineeRepository{db: db}
}

// Create stores a new trainee profile linked to an existing user
func (r *TraineeRepository) Create(ctx context.Context, trainee *model.Trainee) error {
	// Build the SET clause dynamically so optional fields stay NONE instead
	// of NULL.
	setClause := `user = type::record($user)`
	vars := map[string]interface{}{
		"user": trainee.UserID,
	}
	if trainee.Birthday != nil {
		setClause += `, birthday = <datetime>$birthday`
		vars["birthday"] = trainee.Birthday
	}
	if trainee.Address != "" {
		setClause += `, address = $address`
		vars["address"] = trainee.Address
	}

	results, err := r.db.Query(ctx, "CREATE trainee SET "+setClause, vars)
	if err != nil {
		return err
	}

	created := rows(results)
	if len(created) == 0 {
		return errUnexpectedFormat
	}
	trainee.ID = recordID(created[0]["id"])
	return nil
}

// GetByID retrieves a trainee and its user by record ID. Returns (nil, nil)
// when absent.
func (r *TraineeRepository) GetByID(ctx context.Context, id string) (*model.Trainee, error) {
	query := `SELECT * FROM type::record($id) FETCH user`
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
	return parseTraineeRow(data), nil
}

// GetByUsername retrieves a trainee and its user by the user's username.
// Returns (nil, nil) when absent.
func (r *TraineeRepository) GetByUsername(ctx context.Context, username string) (*model.Trainee, error) {
	query := `SELECT * FROM trainee WHERE user.username = $username LIMIT 1 FETCH user`
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
	return parseTraineeRow(data), nil
}

// List returns all trainees with their users resolved
func (r *TraineeRepository) List(ctx context.Context) ([]*model.Trainee, error) {
	query := `SELECT * FROM trainee ORDER BY user.username FETCH user`
	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	trainees := make([]*model.Trainee, 0)
	for _, data := range rows(results) {
		trainees = append(trainees, parseTraineeRow(data))
	}
	return trainees, nil
}

// Update persists a trainee's birthday and address
func (r *TraineeRepository) Update(ctx context.Context, trainee *model.Trainee) error {
	setClause := `address = $address`
	vars := map[string]interface{}{
		"id":      trainee.ID,
		"address": trainee.Address,
	}
	if trainee.Birthday != nil {
		setClause += `, birthday = <datetime>$birthday`
		vars["birthday"] = trainee.Birthday
	}
	return r.db.Execute(ctx, "UPDATE type::record($id) SET "+setClause, vars)
}

// Delete removes a trainee, their trainings and the owning user atomically
func (r *TraineeRepository) Delete(ctx context.Context, trainee *model.Trainee) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE training WHERE trainee = type::record($trainee)`, map[string]interface{}{"trainee": trainee.ID})
	batch.Add(`DELETE type::record($trainee)`, map[string]interface{}{"trainee": trainee.ID})
	batch.Add(`DELETE type::record($user)`, map[string]interface{}{"user": trainee.UserID})
	return batch.Execute(ctx, r.db)
}

func parseTraineeRow(data map[string]interface{}) *model.Trainee {
	if data == nil {
		return nil
	}
	trainee := &model.Trainee{
		ID:       recordID(data["id"]),
		Birthday: getTimePtr(data, "birthday"),
		Address:  getString(data, "address"),
	}
	if userData := getMap(data, "user"); userData != nil {
		trainee.User = parseUserRow(userData)
		trainee.UserID = trainee.User.ID
	} else {
		trainee.UserID = recordID(data["user"])
	}
	return trainee
}
