package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophsession/internal/client/bootstrap"
	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/config"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/client/userdata"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

// sessionRestorer is the part of the bootstrapper the App uses.
type sessionRestorer interface {
	Run(ctx context.Context) bootstrap.Outcome
	Restore(ctx context.Context) bootstrap.Outcome
}

type App struct {
	config      *config.Config
	log         logging.Logger
	storage     localstorage.Storage
	store       *userdata.Store
	authService services.AuthService
	restorer    sessionRestorer
	reader      *bufio.Reader
	out         io.Writer

	mu          sync.Mutex
	identity    string
	unsubscribe func()
}

// NewApp builds the App from configuration. The App owns the storage and
// must be closed.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	storage, err := localstorage.Open(ctx, c.Storage.Driver, c.Storage.DSN, c.Storage.Namespace)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	store := userdata.NewStore()
	as := services.NewAuthService(api, storage, store, log)
	boot := bootstrap.New(storage, services.NewProfileService(api), store, log, bootstrap.Options{
		KeepTokenOnTransportError: c.Bootstrap.KeepTokenOnTransportError,
	})

	app := newApp(c, log, storage, store, as, boot, os.Stdin, os.Stdout)
	return app, nil
}

func newApp(c *config.Config, log logging.Logger, storage localstorage.Storage, store *userdata.Store,
	as services.AuthService, restorer sessionRestorer, in io.Reader, out io.Writer) *App {
	a := &App{
		config:      c,
		log:         log,
		storage:     storage,
		store:       store,
		authService: as,
		restorer:    restorer,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.unsubscribe = store.Subscribe(a.onSessionChange)
	return a
}

// onSessionChange keeps the prompt identity in step with the session store.
func (a *App) onSessionChange(p userdata.UserProfile) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case !p.Authenticated():
		a.identity = ""
	case p.Name != "":
		a.identity = p.Name
	default:
		a.identity = "signed in"
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.identity == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.identity)
}

func (a *App) isLoggedIn() bool {
	return a.store.Get().Authenticated()
}

// Run restores the persisted session and then serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	outcome := a.restorer.Run(ctx)
	a.log.Debug(ctx, "session bootstrap finished", "outcome", outcome)
	if outcome == bootstrap.OutcomeHydrated {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.store.Get().Name)
	}

	fmt.Fprintln(a.out, "GophSession CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the session subscription and the storage.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.storage != nil {
		return a.storage.Close()
	}
	return nil
}
