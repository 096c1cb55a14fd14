package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

const AppName = "donation-service"

const (
	DefaultLoginCodeExpiry = 120 * time.Second
	DefaultEmailDomain     = "@realpage.com"
)

// Config is built once at process start and passed by reference to every
// component; nothing reads the environment after LoadConfig returns.
type Config struct {
	AppName  string
	AppPort  string
	AppUrl   string
	LogLevel string

	DBUrl string

	AllowedEmailDomain string
	LoginCodeExpiry    time.Duration

	SendgridAPIKey    string
	SendgridFromEmail string

	StaticDir string
}

// LoadConfig reads process configuration from the environment. A local
// .env file is honored when present so the service can run outside a
// container.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		utils.Logger.Debug("Loaded environment from .env file")
	}

	appPort := getEnv("APP_PORT", "5000")
	appUrl := getEnv("APP_URL", "http://localhost:"+appPort)

	dbHost := getEnv("DB_HOST", "localhost")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := getEnv("DB_NAME", "realpage_donations")
	dbPort := getEnv("DB_PORT", "5432")

	dbUrl := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(dbUser), url.QueryEscape(dbPassword), dbHost, dbPort, dbName,
	)

	codeExpiry := DefaultLoginCodeExpiry
	if raw := os.Getenv("LOGIN_CODE_EXPIRY_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			utils.Logger.Fatalf("Invalid LOGIN_CODE_EXPIRY_SECONDS %q", raw)
		}
		codeExpiry = time.Duration(secs) * time.Second
	}

	sgAPIKey := os.Getenv("SENDGRID_API_KEY")
	sgFromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if sgAPIKey != "" && sgFromEmail == "" {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}
	if sgAPIKey == "" {
		utils.Logger.Info("SENDGRID_API_KEY not set; login codes will be printed to the console")
	}

	cfg := &Config{
		AppName:            AppName,
		AppPort:            appPort,
		AppUrl:             appUrl,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DBUrl:              dbUrl,
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", DefaultEmailDomain),
		LoginCodeExpiry:    codeExpiry,
		SendgridAPIKey:     sgAPIKey,
		SendgridFromEmail:  sgFromEmail,
		StaticDir:          getEnv("STATIC_DIR", "static"),
	}

	utils.Logger.Infof("Loaded config for %s (db=%s@%s:%s/%s)", AppName, dbUser, dbHost, dbPort, dbName)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
