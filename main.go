package main

import (
	"context"
	"log"

	"nestmetrics/internal/config"
	"nestmetrics/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create dependency injection container
	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	log.Println("Loading data and ML model...")
	if err := appContainer.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	log.Println("🚀 NestMetrics API server starting...")
	log.Printf("📊 Serving %d listings", appContainer.Snapshot.Len())
	if err := appContainer.Server.Run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
