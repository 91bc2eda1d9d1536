// Command report writes the market summary report to a file or stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"nestmetrics/internal/config"
	"nestmetrics/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	format := flag.String("format", "md", "report format: md or html")
	flag.Parse()

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

	ctx := context.Background()
	if err := appContainer.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	var rendered []byte
	switch *format {
	case "md":
		md, err := appContainer.Reports.Markdown(ctx)
		if err != nil {
			log.Fatalf("Failed to build report: %v", err)
		}
		rendered = []byte(md)
	case "html":
		rendered, err = appContainer.Reports.HTML(ctx)
		if err != nil {
			log.Fatalf("Failed to build report: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q (want md or html)", *format)
	}

	if *out == "" {
		fmt.Print(string(rendered))
		return
	}
	if err := os.WriteFile(*out, rendered, 0o644); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("✅ Report written to %s", *out)
}
