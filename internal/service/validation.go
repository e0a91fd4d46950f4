package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gymkit/api/internal/model"
)

// Validator enforces precondition rules before state-changing operations.
// It is side-effect-free: it inspects input, never mutates it.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator configured to report JSON field names
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates a request struct against its validate tags. Returns a
// *model.ProblemDetails carrying per-field errors, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return model.NewBadRequestError(err.Error())
	}

	fields := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, model.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return model.NewValidationError(fields)
}

// ValidateTrainee checks a trainee and its resolved user before persistence.
// A nil user means the reference did not resolve and fails with
// ErrUserNotFound rather than a field error.
func (v *Validator) ValidateTrainee(trainee *model.Trainee, user *model.User) error {
	if trainee == nil {
		return model.NewBadRequestError("trainee is required")
	}
	if user == nil {
		return ErrUserNotFound
	}
	return validateUserNames(user)
}

// ValidateTrainer checks a trainer and its resolved user before persistence.
// Trainers additionally require a specialization reference.
func (v *Validator) ValidateTrainer(trainer *model.Trainer, user *model.User) error {
	if trainer == nil {
		return model.NewBadRequestError("trainer is required")
	}
	if user == nil {
		return ErrUserNotFound
	}
	if trainer.SpecializationID == "" {
		return ErrSpecializationRequired
	}
	return validateUserNames(user)
}

func validateUserNames(user *model.User) error {
	fields := make([]model.FieldError, 0, 2)
	if strings.TrimSpace(user.FirstName) == "" {
		fields = append(fields, model.FieldError{Field: "first_name", Message: "must not be blank"})
	}
	if strings.TrimSpace(user.LastName) == "" {
		fields = append(fields, model.FieldError{Field: "last_name", Message: "must not be blank"})
	}
	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
