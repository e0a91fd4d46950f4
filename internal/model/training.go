package model

import (
	"strings"
	"time"
)

// Training is a scheduled session linking one trainee and one trainer. A
// training is never created without both participants resolving first.
type Training struct {
	ID        string        `json:"id"`
	TraineeID string        `json:"trainee_id"`
	TrainerID string        `json:"trainer_id"`
	Name      string        `json:"name"`
	Date      time.Time     `json:"date"`
	Duration  int           `json:"duration"` // minutes
	TypeID    string        `json:"type_id,omitempty"`
	Trainee   *Trainee      `json:"trainee,omitempty"`
	Trainer   *Trainer      `json:"trainer,omitempty"`
	Type      *TrainingType `json:"type,omitempty"`
}

// TrainingView is the projection returned by filtered training listings.
// Counterparty is the username of the other participant relative to the
// person the listing was requested for.
type TrainingView struct {
	Name         string        `json:"name"`
	Date         time.Time     `json:"date"`
	Type         *TrainingType `json:"type,omitempty"`
	Duration     int           `json:"duration"`
	Counterparty string        `json:"counterparty"`
}

// TrainingFilter narrows a training listing. Nil date bounds leave that side
// of the range open; an empty Name or TypeID disables that criterion.
type TrainingFilter struct {
	From   *time.Time
	To     *time.Time
	Name   string // counterparty name, matched case-insensitively
	TypeID string
}

// Matches reports whether a training passes the filter. The date range is
// inclusive on both ends. counterparty is the field the caller matches Name
// against: the trainer's first name for trainee listings, the trainee's
// username for trainer listings.
func (f TrainingFilter) Matches(t *Training, counterparty string) bool {
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if f.Name != "" && !strings.EqualFold(f.Name, counterparty) {
		return false
	}
	if f.TypeID != "" && f.TypeID != t.TypeID {
		return false
	}
	return true
}

// CreateTrainingRequest is the payload for training creation.
type CreateTrainingRequest struct {
	TraineeUsername string    `json:"trainee_username" validate:"required"`
	TrainerUsername string    `json:"trainer_username" validate:"required"`
	Name            string    `json:"name" validate:"required,max=100"`
	Date            time.Time `json:"date" validate:"required"`
	Duration        int       `json:"duration" validate:"required,gt=0"`
	TypeID          string    `json:"type_id,omitempty"`
}

// UpdateTrainingRequest is the payload for training updates.
type UpdateTrainingRequest struct {
	Name     string    `json:"name" validate:"required,max=100"`
	Date     time.Time `json:"date" validate:"required"`
	Duration int       `json:"duration" validate:"required,gt=0"`
	TypeID   string    `json:"type_id,omitempty"`
}
