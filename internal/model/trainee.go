package model

import "time"

// Trainee represents a member profile. The owning User is resolved by the
// repository layer; UserID is the stored reference.
type Trainee struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Address  string     `json:"address,omitempty"`
	User     *User      `json:"user,omitempty"`
}

// TraineeProfile is the read model returned by profile lookups.
type TraineeProfile struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Birthday  *time.Time      `json:"birthday,omitempty"`
	Address   string          `json:"address,omitempty"`
	IsActive  bool            `json:"is_active"`
	Trainers  []PersonSummary `json:"trainers"`
}

// RegisterTraineeRequest is the payload for trainee registration.
type RegisterTraineeRequest struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Address   string     `json:"address,omitempty" validate:"max=200"`
}

// UpdateTraineeRequest is the payload for a trainee profile update.
type UpdateTraineeRequest struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Address   string     `json:"address,omitempty" validate:"max=200"`
	IsActive  bool       `json:"is_active"`
}
