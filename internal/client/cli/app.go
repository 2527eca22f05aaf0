package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/moneytrack/moneytrack/internal/client/api"
	"github.com/moneytrack/moneytrack/internal/client/config"
	"github.com/moneytrack/moneytrack/internal/client/services"
	"github.com/moneytrack/moneytrack/internal/client/storage"
	"github.com/moneytrack/moneytrack/internal/common"
	"github.com/moneytrack/moneytrack/internal/logging"
)

// App holds everything a REPL session needs: config, services, input reader,
// and the output writers. errOut is the inline error display: command
// failures are written there as a single line and never propagate further.
type App struct {
	config         *config.Config
	authService    services.AuthService
	trackerService services.TrackerService
	log            logging.Logger
	reader         *bufio.Reader
	out            io.Writer
	errOut         io.Writer
	userEmail      string
}

// NewApp opens the local database and wires services against the configured
// backend.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return &App{
		config:         cfg,
		authService:    services.NewAuthService(apiClient, db),
		trackerService: services.NewTrackerService(apiClient, db),
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		errOut:         os.Stdout,
	}, nil
}

// Run restores any stored session and enters the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)

	fmt.Fprintln(a.out, "Welcome to moneytrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// restoreSession picks up a previously stored token so a restarted client
// stays signed in. An expired token is reported but kept; the user decides
// whether to sign in again.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.authService.CurrentSession(ctx)
	switch {
	case err == nil:
		a.userEmail = sess.Email
	case errors.Is(err, common.ErrSessionExpired):
		a.userEmail = sess.Email
		a.showError(err.Error())
	case errors.Is(err, common.ErrNotSignedIn):
		// first run, nothing stored
	default:
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
}

func (a *App) isSignedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

// showError is the single inline error display: one line, message only.
func (a *App) showError(msg string) {
	fmt.Fprintln(a.errOut, msg)
}
