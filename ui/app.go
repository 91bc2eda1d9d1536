package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/report"
	"nestmetrics/internal/scoring"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the server-rendered dashboard over the dataset snapshot.
type App struct {
	router    *chi.Mux
	provider  *aggregate.Provider
	engine    *scoring.Engine
	reports   *report.Builder
	templates *template.Template
}

// Config holds dashboard configuration
type Config struct {
	Port string
}

// NewApp creates the dashboard application
func NewApp(provider *aggregate.Provider, engine *scoring.Engine, reports *report.Builder) (*App, error) {
	funcMap := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"score": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		provider:  provider,
		engine:    engine,
		reports:   reports,
		templates: templates,
	}

	app.router.Use(middleware.Logger)
	app.router.Use(middleware.Recoverer)
	app.router.Use(middleware.Compress(5))

	app.router.Get("/", app.handleDashboard)
	app.router.Get("/report", app.handleReport)

	return app, nil
}

// dashboardView is the data fed to the dashboard template.
type dashboardView struct {
	Overview  aggregate.Overview
	Boroughs  []aggregate.BoroughStats
	RoomTypes []aggregate.RoomTypeStats
	TopHosts  []scoring.HostRanking
}

// handleDashboard renders the overview page
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	overview, err := a.provider.Overview()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	boroughs, err := a.provider.ByBorough(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	roomTypes, err := a.provider.ByRoomType(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	hosts, err := a.engine.RankHosts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := dashboardView{
		Overview:  overview,
		Boroughs:  boroughs,
		RoomTypes: roomTypes,
		TopHosts:  hosts,
	}
	if err := a.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		log.Printf("template error: %v", err)
	}
}

// handleReport renders the markdown market report as HTML
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	rendered, err := a.reports.HTML(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := struct{ Body template.HTML }{Body: template.HTML(rendered)}
	if err := a.templates.ExecuteTemplate(w, "report.html", view); err != nil {
		log.Printf("template error: %v", err)
	}
}

// Run starts the dashboard listener
func (a *App) Run(cfg Config) error {
	addr := ":" + cfg.Port
	log.Printf("📈 Dashboard listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
