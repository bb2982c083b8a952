package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"foodorder/cmd"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateDispatchOrderCommandHandler(),
		root.CreatePurgeStaleCartsCommandHandler(),
		config.DispatchEnabled,
		time.Duration(config.CartTTLHours)*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig() cmd.Config {
	// a missing .env file is fine; the environment still applies
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}
	return config
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	root.CreateServer().RegisterRoutes(e)
	root.CreateManagementServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
