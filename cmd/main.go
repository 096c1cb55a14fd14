package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/app"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/config"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/controllers"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/repositories"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/routes"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/services"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.AppName, cfg.LogLevel)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	codeRepo := repositories.NewLoginCodeRepository(application.DB)
	ngoRepo := repositories.NewNGORepository(application.DB)
	donationRepo := repositories.NewDonationRepository(application.DB)
	countRepo := repositories.NewDonorCountRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	mailer := services.NewMailer(cfg)
	authService := services.NewAuthService(userRepo, codeRepo, mailer, cfg)
	ngoService := services.NewNGOService(ngoRepo)
	donationService := services.NewDonationService(userRepo, ngoRepo, donationRepo, countRepo)
	codeCleanupService := services.NewCodeCleanupService(codeRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	ngoController := controllers.NewNGOController(ngoService)
	donationController := controllers.NewDonationController(donationService)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.LoginSendOTP, authController.SendOTP).Methods(http.MethodPost)
	router.HandleFunc(routes.LoginVerifyOTP, authController.VerifyOTP).Methods(http.MethodPost)

	router.HandleFunc(routes.NGOs, ngoController.ListNGOs).Methods(http.MethodGet)
	router.HandleFunc(routes.NGORequirements, ngoController.GetRequirements).Methods(http.MethodGet)

	router.HandleFunc(routes.DonorsTotal, donationController.TotalDonors).Methods(http.MethodGet)
	router.HandleFunc(routes.Donate, donationController.Donate).Methods(http.MethodPost)

	// Frontend assets; everything not matched above falls through here.
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	//----------------------------------------------------------------------
	// Daily cleanup of expired login codes
	//----------------------------------------------------------------------
	c := cron.New()
	_, schErr := c.AddFunc("0 3 * * *", func() {
		if e := codeCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled login-codes cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule login-codes cleanup job")
	}
	c.Start()
	defer c.Stop()

	//----------------------------------------------------------------------
	// CORS & serve
	//----------------------------------------------------------------------
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, corsHandler.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
