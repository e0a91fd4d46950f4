package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Token Errors =====
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)

// ===== Trainee Errors =====
var (
	ErrTraineeNotFound = errors.New("trainee not found")
)

// ===== Trainer Errors =====
var (
	ErrTrainerNotFound        = errors.New("trainer not found")
	ErrSpecializationRequired = errors.New("specialization is required")
)

// ===== Training Errors =====
var (
	ErrTrainingNotFound     = errors.New("training not found")
	ErrTrainingTypeNotFound = errors.New("training type not found")
	ErrUnknownTrainee       = errors.New("trainee could not be resolved")
	ErrUnknownTrainer       = errors.New("trainer could not be resolved")
)
