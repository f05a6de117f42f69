package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/cookies"
	cookiestore "github.com/dmitrijs2005/gophdiary/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/session"
	"github.com/dmitrijs2005/gophdiary/internal/client/views"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// ErrCommandFailed is returned by one-shot commands whose failure was
// already reported to the user.
var ErrCommandFailed = errors.New("command failed")

// App wires the cookie store, the API client, the services and the views
// for the terminal front-ends.
type App struct {
	log logging.Logger
	api client.Client

	session  *session.Session
	auth     services.AuthService
	entries  services.EntryService
	profiles services.ProfileService
	router   *views.Router

	loginView   *views.LoginView
	signupView  *views.SignupView
	entriesView *views.EntriesView
	profileView *views.ProfileView

	notify views.Notifier
	reader *bufio.Reader
	out    io.Writer
	width  int

	closers []func() error
}

// NewApp opens the cookie store at cfg.CookieDB, restores the saved session
// cookies and builds an HTTP client for cfg.BaseURL().
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	base, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	db, err := client.InitDatabase(ctx, cfg.CookieDB, log)
	if err != nil {
		log.Error(ctx, "error initializing cookie store", "path", cfg.CookieDB, "error", err)
		return nil, err
	}

	origin := base.Scheme + "://" + base.Host
	jar, err := cookies.NewJar(base, cookiestore.NewStore(db, origin))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := jar.Load(ctx); err != nil {
		log.Warn(ctx, "failed to restore session cookies", "error", err)
	}

	api, err := client.NewHTTPClient(cfg.BaseURL(), jar,
		client.WithLogger(log),
		client.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(api, log, in, out)
	a.closers = append(a.closers,
		func() error { api.Close(); return nil },
		db.Close,
	)
	return a, nil
}

// newApp builds an App around any client.Client.
func newApp(api client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	s := session.New()
	router := views.NewRouter(s)
	notify := &termNotifier{w: out}

	a := &App{
		log:      log,
		api:      api,
		session:  s,
		auth:     services.NewAuthService(api, s, log),
		entries:  services.NewEntryService(api),
		profiles: services.NewProfileService(api),
		router:   router,
		notify:   notify,
		reader:   bufio.NewReader(in),
		out:      out,
		width:    80,
	}
	a.loginView = views.NewLoginView(a.auth, router, notify)
	a.signupView = views.NewSignupView(a.auth, router, notify)
	a.entriesView = views.NewEntriesView(a.entries, notify, log)
	a.profileView = views.NewProfileView(a.profiles, notify, log)
	a.closers = append(a.closers, func() error { router.Close(); return nil })
	return a
}

// Close releases the HTTP connections and the cookie store.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Auth, Entries, Profiles, Router and Logger expose the wiring to the TUI.
func (a *App) Auth() services.AuthService { return a.auth }
func (a *App) Entries() services.EntryService { return a.entries }
func (a *App) Profiles() services.ProfileService { return a.profiles }
func (a *App) Router() *views.Router { return a.router }
func (a *App) Logger() logging.Logger { return a.log }

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}

// CheckSession probes the server and updates the session state.
func (a *App) CheckSession(ctx context.Context) {
	if err := a.auth.CheckSession(ctx); err != nil {
		a.log.Debug(ctx, "no active session", "error", err)
	}
}

// requireAuth reports whether the dashboard pages are reachable and tells
// the user otherwise.
func (a *App) requireAuth() bool {
	if a.router.Navigate(views.RouteDashboard) != views.RouteDashboard {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'signup' first.")
		return false
	}
	return true
}

func (a *App) status() string {
	if u := a.session.Username(); u != "" {
		return fmt.Sprintf("(%s)", u)
	}
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return "(guest)"
}

// Run checks the saved session and starts the interactive loop. It blocks
// until the user exits or the input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the diary (type 'help' for commands)")
	a.CheckSession(ctx)
	a.router.Navigate(views.RouteRoot)
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.session.Username())
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func failed(ok bool) error {
	if ok {
		return nil
	}
	return ErrCommandFailed
}
