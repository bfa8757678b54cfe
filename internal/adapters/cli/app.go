package cli

import (
	"github.com/spf13/afero"

	"yt2reader/internal/adapters/readerapi"
	"yt2reader/internal/adapters/scrape"
	"yt2reader/internal/adapters/store"
	"yt2reader/internal/application"
	"yt2reader/internal/config"
	"yt2reader/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config  *config.Config
	Fetcher ports.PageFetcher
	Tokens  ports.TokenStore

	ExtractSvc  *application.ExtractService
	PlaylistSvc *application.PlaylistService
	SubmitSvc   *application.SubmitService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	fetcher, err := scrape.NewFetcher()
	if err != nil {
		return nil, err
	}

	playlistStore := store.NewPlaylistFile(afero.NewOsFs(), cfg.PlaylistPath())
	client := readerapi.NewClient(cfg.Reader.BaseURL)

	return &App{
		Config:      cfg,
		Fetcher:     fetcher,
		Tokens:      store.NewTokenSource(cfg),
		ExtractSvc:  application.NewExtractService(),
		PlaylistSvc: application.NewPlaylistService(playlistStore),
		SubmitSvc:   application.NewSubmitService(client, application.StdSleeper{}),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
