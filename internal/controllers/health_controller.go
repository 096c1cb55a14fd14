package controllers

import (
	"context"
	"net/http"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/app"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app: app}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Database unreachable",
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthResponse{Status: "OK", DB: "up"})
}
