// Package web parses web command flags and starts the marketing site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/noticedesk/noticedesk.uk/internal/platform/cmd"
	"github.com/noticedesk/noticedesk.uk/internal/web"
	"github.com/noticedesk/noticedesk.uk/internal/web/guides"
	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
	"github.com/noticedesk/noticedesk.uk/internal/web/storage/memory"
	"github.com/noticedesk/noticedesk.uk/internal/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"NOTICEDESK_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	WizardBaseURL string `env:"NOTICEDESK_WEB_WIZARD_BASE_URL"`
	AuthRevokeURL string `env:"NOTICEDESK_WEB_AUTH_REVOKE_URL"`
	// SessionSecret is env-only; secrets stay off the command line.
	SessionSecret string `env:"NOTICEDESK_WEB_SESSION_SECRET"`
	StoragePath   string `env:"NOTICEDESK_WEB_DB_PATH"`
	GuidesDir     string `env:"NOTICEDESK_WEB_GUIDES_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.WizardBaseURL, "wizard-base-url", cfg.WizardBaseURL, "Wizard backend base URL for case validation")
	fs.StringVar(&cfg.AuthRevokeURL, "auth-revoke-url", cfg.AuthRevokeURL, "Auth provider session revoke endpoint")
	fs.StringVar(&cfg.StoragePath, "db-path", cfg.StoragePath, "SQLite database path (empty keeps counters and leads in memory)")
	fs.StringVar(&cfg.GuidesDir, "guides-dir", cfg.GuidesDir, "Guide markdown directory overriding the embedded set")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the marketing web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, closeStore, err := openStore(ctx, cfg.StoragePath)
		if err != nil {
			return err
		}
		defer closeStore()

		library, watcher, err := loadGuides(cfg.GuidesDir)
		if err != nil {
			return err
		}
		if watcher != nil {
			watcher.Start(ctx)
			defer watcher.Stop()
		}

		server, err := web.NewServer(web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			WizardBaseURL: cfg.WizardBaseURL,
			AuthRevokeURL: cfg.AuthRevokeURL,
			SessionSecret: cfg.SessionSecret,
			Store:         store,
			Library:       library,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// openStore opens the configured conversion-state store. An empty path keeps
// state in memory, which resets counters and drops leads on restart.
func openStore(ctx context.Context, path string) (webstorage.Store, func(), error) {
	path = strings.TrimSpace(path)
	var store webstorage.Store
	if path == "" {
		log.Printf("web store path empty, keeping state in memory")
		store = memory.New()
	} else {
		sqlStore, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open web store: %w", err)
		}
		store = sqlStore
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Printf("close web store err=%v", err)
		}
	}
	return store, closeStore, nil
}

// loadGuides builds the guide library override: a directory of markdown that
// replaces the embedded set and hot-reloads on edits. An empty dir returns a
// nil library so the server falls back to the embedded guides.
func loadGuides(dir string) (*guides.Library, *guides.Watcher, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil, nil
	}
	library, err := guides.NewLibrary()
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded guides: %w", err)
	}
	if err := library.LoadDir(dir); err != nil {
		return nil, nil, fmt.Errorf("load guides dir %s: %w", dir, err)
	}
	watcher, err := guides.NewWatcher(library, dir)
	if err != nil {
		return nil, nil, err
	}
	return library, watcher, nil
}
