package container

import (
	"context"
	"fmt"
	"log"

	"nestmetrics/adapters/model"
	"nestmetrics/adapters/postgres"
	"nestmetrics/adapters/tabular"
	"nestmetrics/domain/listing"
	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/api"
	"nestmetrics/internal/config"
	"nestmetrics/internal/report"
	"nestmetrics/internal/scoring"
	"nestmetrics/internal/testkit"
	"nestmetrics/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies and manages their lifecycle.
// After Init the object graph is immutable: every request reads the same
// snapshot and the same read-only services.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Dataset
	Source   ports.ListingSource
	Snapshot *listing.Snapshot

	// Services
	Provider  *aggregate.Provider
	Predictor ports.PricePredictor
	Engine    *scoring.Engine
	Reports   *report.Builder
	Server    *api.Server
}

// New creates a dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// Init selects the listing source, loads the snapshot once, and wires every
// service. This is the single initialization point; nothing mutates the
// graph afterwards.
func (c *Container) Init(ctx context.Context) error {
	if err := c.initSource(); err != nil {
		return err
	}

	listings, err := c.Source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load listings: %w", err)
	}
	c.Snapshot = listing.NewSnapshot(c.Source.Name(), listings)
	log.Printf("✅ Loaded %d listings from %s (snapshot %s)",
		c.Snapshot.Len(), c.Source.Name(), c.Snapshot.ID)

	c.initPredictor()

	c.Provider = aggregate.NewProvider(c.Snapshot)
	c.Engine = scoring.NewEngine(c.Provider, c.Predictor)
	c.Reports = report.NewBuilder(c.Provider, c.Engine)
	c.Server = api.NewServer(c.Config, c.Provider, c.Engine, c.Reports)
	return nil
}

// initSource picks the dataset backend: Postgres when configured, then a
// dataset file, then synthetic data as the last resort.
func (c *Container) initSource() error {
	if url := c.Config.Database.URL; url != "" {
		db, err := sqlx.Connect("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		c.DB = db
		c.Source = postgres.NewListingSource(db)
		return nil
	}

	if file := c.Config.Data.File; file != "" {
		c.Source = tabular.NewSource(file)
		return nil
	}

	log.Println("⚠️ No dataset configured, using synthetic listings")
	c.Source = testkit.NewKit().Source()
	return nil
}

// initPredictor loads the optional regression model. A missing or broken
// model file leaves the service in statistical-only mode.
func (c *Container) initPredictor() {
	if c.Config.Model.File == "" {
		log.Println("⚠️ ML model not found, using statistical methods")
		return
	}
	m, err := model.Load(c.Config.Model.File)
	if err != nil {
		log.Printf("⚠️ Could not load model (%v), using statistical methods", err)
		return
	}
	c.Predictor = m
	log.Println("✅ ML model loaded successfully")
}

// Shutdown releases held resources
func (c *Container) Shutdown(ctx context.Context) {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}
}
