// Package app wires configuration, clients, services and session state into
// the shared core used by cmd/folioscope-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rgale/folioscope/internal/clients/gemini"
	"github.com/rgale/folioscope/internal/clients/gnews"
	"github.com/rgale/folioscope/internal/clients/yahoo"
	"github.com/rgale/folioscope/internal/common"
	"github.com/rgale/folioscope/internal/interfaces"
	"github.com/rgale/folioscope/internal/services/analysis"
	"github.com/rgale/folioscope/internal/services/narrative"
	"github.com/rgale/folioscope/internal/session"
)

// App holds all initialized clients, services and the session store.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	MarketClient     interfaces.MarketDataClient
	NewsClient       interfaces.NewsClient
	GeminiClient     interfaces.GenerativeClient
	AnalysisService  interfaces.AnalysisService
	NarrativeService interfaces.NarrativeService
	Session          *session.Store
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes all clients, services and the session store.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Load configuration - check provided path, FOLIOSCOPE_CONFIG, then
	// binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("FOLIOSCOPE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "folioscope.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folioscope.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	marketClient := yahoo.NewClient(
		yahoo.WithLogger(logger),
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	newsClient := gnews.NewClient(
		gnews.WithLogger(logger),
		gnews.WithBaseURL(config.Clients.GNews.BaseURL),
		gnews.WithTimeout(config.Clients.GNews.GetTimeout()),
	)

	// The generative client stays nil without a key; the narrative service
	// then reports unavailable and the HTTP layer blocks the action.
	var generativeClient interfaces.GenerativeClient
	if config.Clients.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), config.Clients.Gemini.APIKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - narrative will be unavailable")
		} else {
			generativeClient = geminiClient
		}
	} else {
		logger.Warn().Msg("Gemini API key not configured - narrative will be unavailable")
	}

	sessionStore := session.NewStore()

	analysisService := analysis.NewService(marketClient, newsClient, sessionStore, logger)
	narrativeService := narrative.NewService(generativeClient, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		MarketClient:     marketClient,
		NewsClient:       newsClient,
		GeminiClient:     generativeClient,
		AnalysisService:  analysisService,
		NarrativeService: narrativeService,
		Session:          sessionStore,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}
