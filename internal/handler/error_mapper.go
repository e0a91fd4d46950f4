package handler

import (
	"errors"
	"log/slog"

	"github.com/gymkit/api/internal/model"
	"github.com/gymkit/api/internal/service"
)

// MapServiceError translates service layer errors into Problem Details.
// Validation failures arrive as fully built *model.ProblemDetails and pass
// through unchanged; everything else maps by sentinel.
func MapServiceError(err error) *model.ProblemDetails {
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError("invalid username or password")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return model.NewUnauthorizedError("invalid refresh token")
	case errors.Is(err, service.ErrRefreshTokenExpired):
		return model.NewUnauthorizedError("refresh token expired")
	case errors.Is(err, service.ErrRefreshTokenRevoked):
		return model.NewUnauthorizedError("refresh token revoked")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrTraineeNotFound):
		return model.NewNotFoundError("trainee")
	case errors.Is(err, service.ErrTrainerNotFound):
		return model.NewNotFoundError("trainer")
	case errors.Is(err, service.ErrTrainingNotFound):
		return model.NewNotFoundError("training")
	case errors.Is(err, service.ErrTrainingTypeNotFound):
		return model.NewNotFoundError("training type")

	// ===== Invalid Reference Errors → 400 =====
	case errors.Is(err, service.ErrUnknownTrainee):
		return model.NewBadRequestError("trainee could not be resolved")
	case errors.Is(err, service.ErrUnknownTrainer):
		return model.NewBadRequestError("trainer could not be resolved")
	case errors.Is(err, service.ErrSpecializationRequired):
		return model.NewBadRequestError("specialization is required")

	default:
		slog.Error("unhandled service error", slog.Any("error", err))
		return model.NewInternalError("")
	}
}
