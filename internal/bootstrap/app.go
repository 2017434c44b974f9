package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"sentinel-backend/internal/analyses"
	"sentinel-backend/internal/incidents"
	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/llm/anthropic"
	"sentinel-backend/internal/settings"
	"sentinel-backend/internal/shared/config"
	"sentinel-backend/internal/shared/server"
)

const (
	settingsFile  = "settings.json"
	incidentsFile = "incidents.json"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	SettingsStore settings.Store
	IncidentRepo  incidents.Repo

	SettingsService *settings.Service
	IncidentService *incidents.Service
	AnalysisService *analyses.Service

	SettingsHandler *settings.Handler
	IncidentHandler *incidents.Handler
	AnalysisHandler *analyses.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", cfg.DataDir, err)
	}

	app := &App{
		Config:        cfg,
		SettingsStore: settings.NewFileStore(filepath.Join(cfg.DataDir, settingsFile)),
		IncidentRepo:  incidents.NewFileRepo(filepath.Join(cfg.DataDir, incidentsFile)),
	}

	var factory llm.Factory = anthropic.NewClient

	app.SettingsService = &settings.Service{Store: app.SettingsStore, NewLLM: factory}
	app.IncidentService = &incidents.Service{Repo: app.IncidentRepo}
	app.AnalysisService = &analyses.Service{
		Settings:  app.SettingsService,
		Incidents: app.IncidentService,
		NewLLM:    factory,
	}

	app.SettingsHandler = settings.NewHandler(app.SettingsService)
	app.IncidentHandler = incidents.NewHandler(app.IncidentService)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysisService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		IncidentHandler: app.IncidentHandler,
		SettingsHandler: app.SettingsHandler,
		SettingsService: app.SettingsService,
	})

	return app, nil
}
