package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gumierow/GIS-ISI/cmd"
	httpin "github.com/Gumierow/GIS-ISI/internal/adapters/in/http"
	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/deliveryrepo"
	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/routerepo"
	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/trackingrepo"
	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/vehiclerepo"
	"github.com/Gumierow/GIS-ISI/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateAssignDeliveryCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	go handleShutdown(jobManager, logger)

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func openDatabase(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	err = gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&deliveryrepo.DeliveryDTO{},
		&routerepo.RouteDTO{},
		&trackingrepo.LocationFixDTO{},
	)
	if err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	return gormDB
}

func handleShutdown(jobManager *jobs.JobManager, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	jobManager.StopAll()
	os.Exit(0)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateVehicleCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateReportDeliveryFailureCommandHandler(),
		app.CreateCreateRouteCommandHandler(),
		app.CreateRecordLocationFixCommandHandler(),
		app.CreateGetAvailableVehiclesQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetCurrentLocationQueryHandler(),
		app.CreateGetLocationHistoryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
