package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/services"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type DonationController struct {
	donationService services.DonationService
}

func NewDonationController(donationService services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

var donationValidate = validator.New()

func (c *DonationController) Donate(w http.ResponseWriter, r *http.Request) {
	var req dtos.DonateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err,
		)
		return
	}
	if err := donationValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing required data", err,
		)
		return
	}

	if err := c.donationService.Record(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, utils.ErrUserNotFound):
			utils.RespondErrorWithCode(
				w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", nil,
			)
		case errors.Is(err, utils.ErrNGONotFound):
			utils.RespondErrorWithCode(
				w, http.StatusNotFound, utils.ErrCodeNotFound, "NGO not found", nil,
			)
		case errors.Is(err, utils.ErrResaleFieldsMissing):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation,
				"Original cost and purchase year are required for resale", nil,
			)
		case errors.Is(err, utils.ErrResaleFieldsInvalid):
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation,
				"Invalid original cost or purchase year", nil,
			)
		default:
			utils.HandleAppError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.DonateResponse{
		Message: fmt.Sprintf("Thank you for your %s! Your contribution has been recorded.", req.ActionType),
	})
}

func (c *DonationController) TotalDonors(w http.ResponseWriter, r *http.Request) {
	total, err := c.donationService.TotalDonors(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.TotalDonorsResponse{TotalDonors: total})
}
