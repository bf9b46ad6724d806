package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/collegecupid/cupid-cli/internal/client/api"
	"github.com/collegecupid/cupid-cli/internal/client/config"
	"github.com/collegecupid/cupid-cli/internal/client/services"
	"github.com/collegecupid/cupid-cli/internal/client/session"
	"github.com/collegecupid/cupid-cli/internal/client/store"
	"github.com/collegecupid/cupid-cli/internal/common"
	"github.com/collegecupid/cupid-cli/internal/logging"
)

// App wires the session manager, API client and services behind the REPL.
type App struct {
	config  *config.Config
	logger  logging.Logger
	printer *Printer
	reader  *bufio.Reader

	db      *sql.DB
	dataDir string

	session        *session.Manager
	profileService services.ProfileService
	feedService    services.FeedService
}

// NewApp opens the local session store and constructs the service graph.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dataDir, err := resolveDataDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(ctx, filepath.Join(dataDir, "session.db"))
	if err != nil {
		logger.Error(ctx, "error opening session store", "error", err)
		return nil, err
	}

	sm := session.NewManager(store.NewSQLiteSessionRepository(db))

	apiClient := api.NewHTTPClient(c.BackendURL, c.RequestTimeout, func(ctx context.Context) (string, error) {
		s, err := sm.Current(ctx)
		if err != nil {
			return "", err
		}
		return s.AccessToken, nil
	})

	return &App{
		config:         c,
		logger:         logger,
		printer:        NewPrinter(os.Stdout),
		reader:         bufio.NewReader(os.Stdin),
		db:             db,
		dataDir:        dataDir,
		session:        sm,
		profileService: services.NewProfileService(apiClient, logger),
		feedService:    services.NewFeedService(apiClient),
	}, nil
}

// resolveDataDir returns dir, or the per-user default when dir is empty, and
// makes sure it exists.
func resolveDataDir(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "collegecupid")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.printer.Info("College Cupid CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the session store.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	_, err := a.session.Current(context.Background())
	return err == nil
}

// status is the prompt decoration: the signed-in display name or email.
func (a *App) status() string {
	s, err := a.session.Current(context.Background())
	if err != nil {
		return ""
	}
	if s.DisplayName != "" {
		return "(" + s.DisplayName + ")"
	}
	return "(" + s.Email + ")"
}

// checkSessionExpired handles the global 401 rule: clear every persisted
// session field and drop back to the login entry point. Reports whether err
// was handled.
func (a *App) checkSessionExpired(ctx context.Context, err error) bool {
	if !errors.Is(err, common.ErrUnauthorized) {
		return false
	}
	if clearErr := a.session.Clear(ctx); clearErr != nil {
		a.logger.Error(ctx, "error clearing expired session", "error", clearErr)
	}
	a.printer.Warn("Session expired. Please login again.")
	return true
}
