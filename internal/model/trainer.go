package model

// Trainer represents a coach profile. Every trainer carries exactly one
// specialization from the training type catalog.
type Trainer struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	SpecializationID string        `json:"specialization_id"`
	User             *User         `json:"user,omitempty"`
	Specialization   *TrainingType `json:"specialization,omitempty"`
}

// TrainerProfile is the read model returned by profile lookups.
type TrainerProfile struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Specialization *TrainingType   `json:"specialization"`
	IsActive       bool            `json:"is_active"`
	Trainees       []PersonSummary `json:"trainees"`
}

// RegisterTrainerRequest is the payload for trainer registration.
type RegisterTrainerRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	SpecializationID string `json:"specialization_id" validate:"required"`
}

// UpdateTrainerProfileRequest is the payload for a trainer profile update.
// The specialization is echoed back in the response but not persisted; see
// TrainerService.UpdateProfile.
type UpdateTrainerProfileRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	SpecializationID string `json:"specialization_id,omitempty"`
	IsActive         bool   `json:"is_active"`
}
