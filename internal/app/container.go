// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/infra/config"
	"github.com/runoshun/duke/internal/infra/filestore"
	"github.com/runoshun/duke/internal/infra/gitstore"
	"github.com/runoshun/duke/internal/infra/logging"
	"github.com/runoshun/duke/internal/infra/sqlitestore"
	"github.com/runoshun/duke/internal/parser"
	"github.com/runoshun/duke/internal/session"
	"github.com/runoshun/duke/internal/storage"
	"github.com/runoshun/duke/internal/usecase"
)

// Config holds the resolved runtime paths.
type Config struct {
	WorkDir   string // Directory duke was started in
	StorePath string // Absolute tasks file or database path (empty for git)
	LogDir    string // Log directory (empty disables file logging)
}

// Overrides are command-line settings that take precedence over config files.
type Overrides struct {
	Backend string // --backend
	File    string // --file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	Codec     *codec.Codec
	Parser    *parser.Parser
	Diag      *slog.Logger // Process-level diagnostics on stderr

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string, overrides Overrides) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return build(dir, overrides, appConfig, configLoader, config.NewManager(dir))
}

// NewWithLoader creates a Container with a custom config loader and manager.
// This is useful for testing.
func NewWithLoader(dir string, overrides Overrides, loader domain.ConfigLoader, manager domain.ConfigManager) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return build(dir, overrides, appConfig, loader, manager)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskStore, logger domain.Logger) *Container {
	formats := domain.DefaultDateFormats()
	return &Container{
		Store:     store,
		Logger:    logger,
		AppConfig: appConfig,
		Codec:     codec.New(formats),
		Parser:    newParser(formats, appConfig),
		Diag:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:    cfg,
	}
}

func build(dir string, overrides Overrides, appConfig *domain.Config, loader domain.ConfigLoader, manager domain.ConfigManager) (*Container, error) {
	if overrides.Backend != "" {
		appConfig.Storage.Backend = overrides.Backend
	}
	if overrides.File != "" {
		appConfig.Storage.Path = overrides.File
	}

	diag := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(appConfig.Log.Level),
	}))

	cfg := Config{
		WorkDir: dir,
		LogDir:  appConfig.Log.Dir,
	}
	if appConfig.Storage.Backend != domain.BackendGit {
		cfg.StorePath = resolvePath(dir, appConfig.Storage.Path)
	}

	formats := domain.DefaultDateFormats()
	c := &Container{
		Logger:        logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level)),
		ConfigLoader:  loader,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Codec:         codec.New(formats),
		Parser:        newParser(formats, appConfig),
		Diag:          diag,
		Config:        cfg,
	}
	if l, ok := c.Logger.(io.Closer); ok {
		c.closers = append(c.closers, l)
	}

	store, err := c.openStore(formats)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Store = store

	diag.Debug("container ready", "backend", appConfig.Storage.Backend, "path", cfg.StorePath)
	return c, nil
}

// openStore creates the backend selected by storage.backend.
func (c *Container) openStore(formats domain.DateFormats) (domain.TaskStore, error) {
	switch c.AppConfig.Storage.Backend {
	case domain.BackendFile, "":
		if c.Config.StorePath == "" {
			return nil, domain.ErrStoreNotConfigured
		}
		return filestore.New(c.Config.StorePath, c.Codec), nil
	case domain.BackendGit:
		store, err := gitstore.New(c.Config.WorkDir, c.AppConfig.Storage.Namespace, c.Codec)
		if err != nil {
			return nil, err
		}
		return store, nil
	case domain.BackendSQLite:
		if c.Config.StorePath == "" {
			return nil, domain.ErrStoreNotConfigured
		}
		if err := os.MkdirAll(filepath.Dir(c.Config.StorePath), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		store, err := sqlitestore.New(c.Config.StorePath, formats)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, store)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, c.AppConfig.Storage.Backend)
	}
}

// Close releases the store and log file.
func (c *Container) Close() error {
	var lastErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			lastErr = err
		}
	}
	c.closers = nil
	return lastErr
}

func newParser(formats domain.DateFormats, appConfig *domain.Config) *parser.Parser {
	return parser.New(formats, parser.Options{
		Lenient:     appConfig.Parser.Lenient,
		LegacyIndex: appConfig.Parser.LegacyIndex,
	})
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Session factory

// NewSession loads the list through the storage gateway, reporting startup
// diagnostics to display, and returns a session over it.
func (c *Container) NewSession(display domain.Display) *session.Session {
	gw := storage.NewGateway(c.Store, display, c.Logger)
	tasks := gw.Open()
	return session.New(tasks, c.Parser, gw, c.Logger, c.AppConfig.Storage.Autosave)
}

// UseCase factory methods

// ExecLineUseCase returns a new ExecLine use case.
func (c *Container) ExecLineUseCase() *usecase.ExecLine {
	return usecase.NewExecLine(c.Store, c.Parser, c.Logger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Store, c.Codec)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.Codec, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
