package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/services"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

var authValidate = validator.New()

func (c *AuthController) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Email is required", err,
		)
		return
	}

	if err := c.authService.IssueCode(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailRequired):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Email is required", nil,
			)
		case errors.Is(err, utils.ErrDomainForbidden):
			utils.RespondErrorWithCode(
				w, http.StatusForbidden, utils.ErrCodeDomainForbidden, "Only Realpage email IDs are allowed.", nil,
			)
		default:
			utils.HandleAppError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SendOTPResponse{Message: "OTP sent successfully!"})
}

func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Email and OTP are required", err,
		)
		return
	}

	if err := c.authService.VerifyCode(r.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, utils.ErrOTPNotFound):
			utils.RespondErrorWithCode(
				w, http.StatusNotFound, utils.ErrCodeNotFound,
				"No OTP found for this email. Please request a new one.", nil,
			)
		case errors.Is(err, utils.ErrOTPExpired):
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeCodeExpired,
				"OTP has expired. Please request a new one.", nil,
			)
		case errors.Is(err, utils.ErrOTPMismatch):
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeInvalidCode,
				"Invalid OTP. Please try again.", nil,
			)
		default:
			utils.HandleAppError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.VerifyOTPResponse{Message: "Login successful!"})
}
