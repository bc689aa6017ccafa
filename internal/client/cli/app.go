package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avryabov/eventhub-cli/internal/client/catalog"
	"github.com/avryabov/eventhub-cli/internal/client/config"
	"github.com/avryabov/eventhub-cli/internal/client/gateway"
	"github.com/avryabov/eventhub-cli/internal/client/repositories/saved"
	"github.com/avryabov/eventhub-cli/internal/client/repositories/session"
	"github.com/avryabov/eventhub-cli/internal/client/services"
	"github.com/avryabov/eventhub-cli/internal/client/store"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// App ties the client together: configuration, the local store, the three
// backend services, and the in-memory catalog the browse commands work on.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sessions *session.Manager
	saved    saved.Repository
	catalog  *catalog.Catalog
	auth     services.AuthService
	events   services.EventService
	payments services.PaymentService
	filter   catalog.Filter
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database, restores the persisted session if one
// exists, and wires the services to the configured endpoints.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	gw := gateway.New(logger, cfg.RequestTimeout)
	sessions := session.NewManager(db)

	a := &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		sessions: sessions,
		saved:    saved.NewSQLiteRepository(db),
		catalog:  catalog.New(),
		auth:     services.NewAuthService(gw, cfg.AuthEndpoint, sessions, logger),
		events:   services.NewEventService(gw, cfg.EventsEndpoint, logger),
		payments: services.NewPaymentService(gw, cfg.PaymentEndpoint, logger),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	s, err := sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		gw.SetToken(s.Token)
		logger.Info(ctx, "session restored", "user_id", s.User.ID)
	}

	return a, nil
}

// Run fetches the catalog (best effort) and enters the REPL. It blocks
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.refreshCatalog(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not fetch events, showing built-in catalog only:", err)
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

// refreshCatalog replaces the remote half of the catalog with a fresh fetch.
func (a *App) refreshCatalog(ctx context.Context) error {
	events, err := a.events.List(ctx)
	if err != nil {
		return err
	}
	a.catalog.SetRemote(events)
	return nil
}

// sleepCtx waits for d or until ctx is done, whichever comes first. Used
// for the success-screen display delay so it never outlives the caller.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
