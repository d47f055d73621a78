// Package cli is the terminal frontend: every command is a view that calls
// resource accessors with the current session and renders the result.
package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/otonaba/otonaba-cli/auth"
	"github.com/otonaba/otonaba-cli/auth/credsfile"
	"github.com/otonaba/otonaba-cli/internal/config"
	"github.com/otonaba/otonaba-cli/transport"
)

// App wires the session store, transport and config together for the command
// tree. Views read the session through the store; only the login, register and
// logout commands mutate it.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Client *transport.Client
	Store  *auth.Store
	Out    io.Writer
}

// NewApp builds the application around a loaded config. The transport reads
// the bearer token straight from the credentials file on every request, and a
// 401 from any call tears the session down and points the user at login.
func NewApp(cfg *config.Config, logger zerolog.Logger, out io.Writer) (*App, error) {
	repo := credsfile.New(cfg.CredentialsFile)
	client := transport.New(cfg.APIBaseURL,
		transport.WithTokenSource(repo),
		transport.WithLogger(logger),
	)

	store, err := auth.NewStore(repo, client, auth.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "[NewApp] create session store")
	}

	client.HandleUnauthorized(func() {
		store.Expire()
		fmt.Fprintln(out, "Your session has expired. Run `otonaba login` to sign in again.")
	})

	// Restore before any command runs, so views that depend on identity see it.
	store.Restore()

	return &App{
		Config: cfg,
		Logger: logger,
		Client: client,
		Store:  store,
		Out:    out,
	}, nil
}

// RequireAuth gates a command on an authenticated session, the way the SPA
// router redirected unauthenticated visits to the login view.
func (a *App) RequireAuth() error {
	if !a.Store.IsAuthenticated() {
		return errors.Wrap(auth.ErrNotAuthenticated, "run `otonaba login` first")
	}
	return nil
}
