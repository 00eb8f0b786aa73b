package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/civiclens/civiclens-backend/internal/db"
	"github.com/civiclens/civiclens-backend/internal/http"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *http.Server
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	clientset, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, clientset, reposet)
	handlerset := wireHandlers(log, serviceset)
	server := wireServer(log, handlerset)

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   server,
		Cfg:      cfg,
		Clients:  clientset,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.Renderer != nil {
		if err := a.Clients.Renderer.Close(); err != nil {
			a.Log.Warn("renderer shutdown", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
