// Package wire provides dependency injection for the clipd application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"log"
	"sync"

	clipadapter "github.com/example/clipd/internal/adapters/clipboard"
	"github.com/example/clipd/internal/adapters/sqlite"
	"github.com/example/clipd/internal/app"
	"github.com/example/clipd/internal/config"
	"github.com/example/clipd/internal/db"
	"github.com/example/clipd/internal/event"
	"github.com/example/clipd/internal/logging"
	"github.com/example/clipd/internal/ports/primary"
	"github.com/example/clipd/internal/ports/secondary"
	"github.com/example/clipd/internal/watch"
)

var (
	cfg            *config.Config
	logger         *logging.Logger
	bus            *event.Bus
	database       *sql.DB
	historyRepo    secondary.HistoryRepository
	historyService primary.HistoryService
	once           sync.Once
)

// Database returns the shared database handle.
func Database() *sql.DB {
	once.Do(initServices)
	return database
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared structured logger.
func Logger() *logging.Logger {
	once.Do(initServices)
	return logger
}

// EventBus returns the shared event bus.
func EventBus() *event.Bus {
	once.Do(initServices)
	return bus
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// Pipeline assembles a watch pipeline from the configured collaborators.
func Pipeline() *watch.Pipeline {
	once.Do(initServices)
	return watch.NewPipeline(&lazyClipboard{}, historyRepo, bus, watch.Options{
		PollInterval:  cfg.Watch.PollInterval(),
		RelayCapacity: cfg.Watch.RelayCapacity,
		Throttle:      cfg.Watch.Throttle(),
		HistoryLimit:  cfg.History.Limit,
	}, logger)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}

	database, err = db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	bus = event.NewBus()
	historyRepo = sqlite.NewHistoryRepository(database)
	historyService = app.NewHistoryService(historyRepo, &lazyClipboard{})
}

// lazyClipboard defers system clipboard initialization until first use,
// so commands that never touch the clipboard still work in headless
// environments.
type lazyClipboard struct {
	once     sync.Once
	provider secondary.ClipboardProvider
	err      error
}

func (c *lazyClipboard) init() error {
	c.once.Do(func() {
		c.provider, c.err = clipadapter.NewProvider()
	})
	return c.err
}

func (c *lazyClipboard) Read() (string, error) {
	if err := c.init(); err != nil {
		return "", err
	}
	return c.provider.Read()
}

func (c *lazyClipboard) Write(text string) error {
	if err := c.init(); err != nil {
		return err
	}
	return c.provider.Write(text)
}
