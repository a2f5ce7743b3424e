package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"opspro/cmd"
	"opspro/internal/adapters/out/postgres/accountrepo"
	"opspro/internal/adapters/out/postgres/orderrepo"
	"opspro/internal/adapters/out/postgres/partnerrepo"
	"opspro/internal/jobs"

	opshttp "opspro/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultSessionTTL = 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.SeedManagerAccount(context.Background(), configs.AdminUsername, configs.AdminPassword); err != nil {
		log.Fatalf("Error seeding manager account: %v", err)
	}

	sessions := opshttp.NewSessionStore(sessionTTL(configs))

	jobManager := jobs.NewJobManager(sessions, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, sessions, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		SessionTTL:    goDotEnvVariable("SESSION_TTL"),
		AdminUsername: goDotEnvVariable("ADMIN_USERNAME"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func sessionTTL(configs cmd.Config) time.Duration {
	if configs.SessionTTL == "" {
		return defaultSessionTTL
	}

	ttl, err := time.ParseDuration(configs.SessionTTL)
	if err != nil || ttl <= 0 {
		log.Fatalf("Invalid SESSION_TTL %q", configs.SessionTTL)
	}
	return ttl
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partnerrepo.PartnerDTO{},
		&accountrepo.AccountDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, sessions *opshttp.SessionStore, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := opshttp.NewServer(
		sessions,
		app.CreateLoginCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignPartnerCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateCreatePartnerCommandHandler(),
		app.CreateToggleAvailabilityCommandHandler(),
		app.CreateUpdateETACommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetPartnersQueryHandler(),
		app.CreateGetPartnerQueryHandler(),
		app.CreateGetAvailablePartnersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
