package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/auth"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/review"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
// Not-found checks run before validation checks: an unknown word is
// reported as 404 even though it also fails validation.
func MapErrorToStatusCode(err error) int {
	var persistErr *review.PersistenceError

	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.As(err, &persistErr):
		return http.StatusInternalServerError

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	var (
		persistErr *review.PersistenceError
		validErr   *domain.ValidationError
	)

	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.As(err, &persistErr):
		return "Could not record your answer, please retry"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "User ID not found or invalid"

	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this word"

	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrWordExists):
		return "Word already exists"

	case errors.As(err, &validErr):
		if validErr.Field == "" {
			return "Invalid request"
		}
		return fmt.Sprintf("Invalid %s: %s", validErr.Field, validErr.Message)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator failure into a short message
// naming the first offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}
	fe := fieldErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe.Tag()))
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "min":
		return "too short"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err. A non-empty
// fallback replaces the generic message of unexpected server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" && message == "An unexpected error occurred" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
