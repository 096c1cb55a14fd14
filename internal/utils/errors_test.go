package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleAppErrorUsesCarriedStatusAndMessage(t *testing.T) {
	appErr := &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeInternal,
		Message:    "Failed to send OTP",
		Err:        ErrExternalServiceFailure,
	}

	rec := httptest.NewRecorder()
	HandleAppError(rec, appErr)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorResponse(t, rec)
	require.Equal(t, ErrCodeInternal, body.Code)
	require.Equal(t, "Failed to send OTP", body.Message)
}

func TestHandleAppErrorFallsBackForPlainErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleAppError(rec, context.DeadlineExceeded)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorResponse(t, rec)
	require.Equal(t, ErrCodeInternal, body.Code)
	require.Equal(t, "An unexpected error occurred", body.Message)
}

func TestAppErrorUnwrapsToCause(t *testing.T) {
	cause := fmt.Errorf("%w: sendgrid returned 503", ErrExternalServiceFailure)
	appErr := &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeInternal,
		Message:    "Failed to send OTP",
		Err:        cause,
	}

	require.True(t, errors.Is(appErr, ErrExternalServiceFailure))

	var got *AppError
	require.True(t, errors.As(fmt.Errorf("issue code: %w", appErr), &got))
	require.Equal(t, http.StatusInternalServerError, got.StatusCode)
}
