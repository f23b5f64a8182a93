package main

import (
	"fmt"
	netHttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightflow/cmd"
	httpin "freightflow/internal/adapters/in/http"
	"freightflow/internal/adapters/out/postgres"
	"freightflow/internal/adapters/out/postgres/notificationrepo"
	"freightflow/internal/adapters/out/postgres/submissionrepo"
	"freightflow/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateRetryFailedNotificationsCommandHandler(),
		configs.NotificationRedeliverySchedule,
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:                       os.Getenv("HTTP_PORT"),
		DBHost:                         os.Getenv("DB_HOST"),
		DBPort:                         os.Getenv("DB_PORT"),
		DBUser:                         os.Getenv("DB_USER"),
		DBPassword:                     os.Getenv("DB_PASSWORD"),
		DBName:                         os.Getenv("DB_NAME"),
		DBSslMode:                      os.Getenv("DB_SSLMODE"),
		RedisAddr:                      os.Getenv("REDIS_ADDR"),
		MessageGatewayURL:              os.Getenv("MESSAGE_GATEWAY_URL"),
		MessageGatewayAPIKey:           os.Getenv("MESSAGE_GATEWAY_API_KEY"),
		NotificationRedeliverySchedule: os.Getenv("NOTIFICATION_REDELIVERY_SCHEDULE"),
	}

	if config.NotificationRedeliverySchedule == "" {
		config.NotificationRedeliverySchedule = "0 * * * * *"
	}

	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&submissionrepo.SubmissionDTO{},
		&notificationrepo.NotificationDTO{},
		&postgres.SequenceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(netHttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateGenerateLoadIdentifiersCommandHandler(),
		app.CreateSubmitBOLCommandHandler(),
		app.CreateApproveBOLCommandHandler(),
		app.CreateGetBrokerSubmissionsQueryHandler(),
		app.CreateGetSubmissionQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
