package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cargotracker/cmd"
	httpadapter "cargotracker/internal/adapters/in/http"
	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/generated/servers"
	"cargotracker/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	if configs.LoadSampleData {
		if err := app.CreateSampleDataLoader().Load(context.Background()); err != nil {
			log.Fatalf("Failed to load sample data: %v", err)
		}
	}

	jobManager := jobs.NewJobManager(app.CreateInspectUnderwayCargosCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()
	defer app.ApplicationEvents().Drain()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RoutingServiceURL: goDotEnvVariable("ROUTING_SERVICE_URL"),
		LoadSampleData:    goDotEnvVariable("LOAD_SAMPLE_DATA") == "true",
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&locationrepo.LocationDTO{},
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
		&handlingrepo.HandlingEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateBookCargoCommandHandler(),
		app.CreateAssignCargoToRouteCommandHandler(),
		app.CreateChangeDestinationCommandHandler(),
		app.CreateRegisterHandlingEventCommandHandler(),
		app.CreateRequestPossibleRoutesCommandHandler(),
		app.CreateTrackCargoQueryHandler(),
		app.CreateGetUnroutedCargosQueryHandler(),
		app.UnitOfWorkFactory(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
