package repository

import (
	"context"
	"errors"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// UserRepository handles user account data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a new user. The username column carries a unique index, so a
// taken username surfaces as database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			first_name: $first_name,
			last_name: $last_name,
			username: $username,
			password: $password,
			is_active: $is_active,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"username":   user.Username,
		"password":   user.Password,
		"is_active":  user.IsActive,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created := rows(results)
	if len(created) == 0 {
		return errUnexpectedFormat
	}
	user.ID = recordID(created[0]["id"])
	user.CreatedOn = getTime(created[0], "created_on")
	user.UpdatedOn = getTime(created[0], "updated_on")
	return nil
}

// GetByID retrieves a user by record ID. Returns (nil, nil) when no account
// matches.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
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
	return parseUserRow(data), nil
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when no
// account matches.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
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
	return parseUserRow(data), nil
}

// Update persists the mutable profile fields of a user
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			first_name = $first_name,
			last_name = $last_name,
			is_active = $is_active,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_active":  user.IsActive,
	}
	return r.db.Execute(ctx, query, vars)
}

// UpdatePassword replaces a user's password
func (r *UserRepository) UpdatePassword(ctx context.Context, id, password string) error {
	query := `UPDATE type::record($id) SET password = $password, updated_on = time::now()`
	vars := map[string]interface{}{"id": id, "password": password}
	return r.db.Execute(ctx, query, vars)
}

// SetActive flips a user's activation flag
func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE type::record($id) SET is_active = $is_active, updated_on = time::now()`
	vars := map[string]interface{}{"id": id, "is_active": active}
	return r.db.Execute(ctx, query, vars)
}

// UsernamesWithPrefix lists all usernames starting with the given prefix.
// Used by username generation to find a free numeric suffix.
func (r *UserRepository) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT username FROM user WHERE string::starts_with(username, $prefix)`
	results, err := r.db.Query(ctx, query, map[string]interface{}{"prefix": prefix})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	usernames := make([]string, 0)
	for _, data := range rows(results) {
		if name := getString(data, "username"); name != "" {
			usernames = append(usernames, name)
		}
	}
	return usernames, nil
}

func parseUserRow(data map[string]interface{}) *model.User {
	if data == nil {
		return nil
	}
	return &model.User{
		ID:        recordID(data["id"]),
		FirstName: getString(data, "first_name"),
		LastName:  getString(data, "last_name"),
		Username:  getString(data, "username"),
		Password:  getString(data, "password"),
		IsActive:  getBool(data, "is_active"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}
