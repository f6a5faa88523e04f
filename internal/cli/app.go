package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/config"
	"github.com/ishauck/canvas-cli/internal/cryptox"
	"github.com/ishauck/canvas-cli/internal/logging"
	"github.com/ishauck/canvas-cli/internal/repositories/metadata"
	"github.com/ishauck/canvas-cli/internal/secrets"
	"github.com/ishauck/canvas-cli/internal/services"
	"github.com/ishauck/canvas-cli/internal/session"
	"github.com/ishauck/canvas-cli/internal/storage"
)

// App wires the CLI together: storage, registry, selector and the service
// layer. Input and output streams are fields so tests can drive the REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	registry *accounts.Registry
	selector *session.Selector
	services *services.Services
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := os.MkdirAll(filepath.Dir(c.DatabasePath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	key, err := cryptox.LoadOrCreateVaultKey(c.KeyfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault key: %w", err)
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	secretStore := secrets.NewSQLiteStore(db, key)
	registry, err := accounts.NewRegistry(ctx, db, secretStore)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	brandFetch := func(ctx context.Context, domain string) (canvas.BrandConfig, error) {
		return canvas.FetchBrandConfig(ctx, httpClient, domain)
	}

	return &App{
		config:   c,
		log:      log,
		db:       db,
		registry: registry,
		selector: session.NewSelector(registry, secretStore),
		services: services.New(registry, metadata.NewSQLiteRepository(db), services.HTTPClientFactory(httpClient), brandFetch, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

// session opens the active session, walking the user through the chooser
// when several accounts exist without a selection.
func (a *App) session(ctx context.Context) (*session.Session, error) {
	sess, err := a.selector.Open(ctx)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, session.ErrNoSelection) {
		if chooseErr := a.chooseAccount(ctx); chooseErr != nil {
			return nil, chooseErr
		}
		return a.selector.Open(ctx)
	}
	return nil, err
}
