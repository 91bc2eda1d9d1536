package main

import (
	"context"
	"log"

	"nestmetrics/internal/config"
	"nestmetrics/internal/container"
	"nestmetrics/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	if err := appContainer.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	app, err := ui.NewApp(appContainer.Provider, appContainer.Engine, appContainer.Reports)
	if err != nil {
		log.Fatalf("Failed to create dashboard: %v", err)
	}

	if err := app.Run(ui.Config{Port: appConfig.Dashboard.Port}); err != nil {
		log.Fatalf("Dashboard exited: %v", err)
	}
}
