package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/services"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type NGOController struct {
	ngoService services.NGOService
}

func NewNGOController(ngoService services.NGOService) *NGOController {
	return &NGOController{ngoService: ngoService}
}

func (c *NGOController) ListNGOs(w http.ResponseWriter, r *http.Request) {
	ngos, err := c.ngoService.ListNGOs(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ngos)
}

func (c *NGOController) GetRequirements(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(mux.Vars(r)["ngo_id"], 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid NGO id", err,
		)
		return
	}

	resp, err := c.ngoService.GetRequirements(r.Context(), ngoID)
	if err != nil {
		if errors.Is(err, utils.ErrNGONotFound) {
			utils.RespondErrorWithCode(
				w, http.StatusNotFound, utils.ErrCodeNotFound, "NGO not found", nil,
			)
			return
		}
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
