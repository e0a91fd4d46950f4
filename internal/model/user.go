package model

import "time"

// User represents an account identity shared by trainee and trainer
// profiles. The password is stored as given; see DESIGN.md for the parity
// constraint that keeps the comparison plaintext.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Credentials carries a freshly minted username and password. Registration
// is the only path that returns it.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PersonSummary is the identity projection embedded in profile read models.
type PersonSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the payload for username/password authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=10,max=128"`
}

// ActivationRequest is the payload for activation toggles. The flag decides
// direction; the route name only signals caller intent.
type ActivationRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
