package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/liverdesk/internal/config"
	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/logger"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/session"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// App holds everything a command needs. It is filled in by Open once the
// config has been read.
type App struct {
	Config  *config.Config
	Service *service.Service
	Store   store.Repository
	Tokens  *session.FileStore
	Log     zerolog.Logger
	DBPath  string

	closers []io.Closer
}

func New() *App {
	return &App{Log: zerolog.Nop()}
}

// Open initialize logger, database and services from cfg.
func (a *App) Open(cfg *config.Config, migrationFS fs.FS) error {
	logCfg := cfg.Log
	logCfg.Path = ExpandPath(logCfg.Path)
	log, logCloser, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.closers = append(a.closers, logCloser)

	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.closers = append(a.closers, dbStore)

	sessionDir := cfg.Session.Dir
	if sessionDir == "" {
		sessionDir = session.DefaultDir()
	}
	tokens := session.NewFileStore(ExpandPath(sessionDir))

	svc, err := service.NewService(dbStore, cfg, tokens, log)
	if err != nil {
		return err
	}

	a.Config = cfg
	a.Service = svc
	a.Store = dbStore
	a.Tokens = tokens
	a.Log = log
	a.DBPath = dbPath

	log.Debug().Str("db_path", dbPath).Str("config", cfg.ConfigPath).Msg("application opened")
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var merr *multierror.Error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	a.closers = nil
	return merr.ErrorOrNil()
}

// ResolveDBPath returns the configured database path, or one inside the
// application data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path), nil
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, constants.AppName+".db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// AnnotationPublic marks commands that run without a signed-in user.
const AnnotationPublic = "liverdesk/public"

// PublicAnnotations is the Annotations value for such commands.
func PublicAnnotations() map[string]string {
	return map[string]string{AnnotationPublic: "true"}
}
