package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailRequired   = errors.New("email_required")
	ErrDomainForbidden = errors.New("email_domain_forbidden")
	ErrOTPNotFound     = errors.New("otp_not_found")
	ErrOTPExpired      = errors.New("otp_expired")
	ErrOTPMismatch     = errors.New("otp_mismatch")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrNGONotFound     = errors.New("ngo_not_found")

	ErrResaleFieldsMissing = errors.New("resale_fields_missing")
	ErrResaleFieldsInvalid = errors.New("resale_fields_invalid")

	// For delivery failures (e.g., SendGrid)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError carries an HTTP status and public message from services to
// controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap lets errors.Is match the wrapped cause through an AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", err)
	}
}
