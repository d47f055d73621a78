package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/auth"
	"github.com/otonaba/otonaba-cli/cli"
	"github.com/otonaba/otonaba-cli/internal/config"
	"github.com/otonaba/otonaba-cli/transport"
)

func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	return &config.Config{
		APIBaseURL:      apiURL,
		CredentialsFile: filepath.Join(t.TempDir(), "credentials.json"),
		PageLimit:       3,
		PollInterval:    30 * time.Second,
		LogLevel:        "warn",
	}
}

func TestRequireAuthGatesCommandsWithoutASession(t *testing.T) {
	var out bytes.Buffer
	app, err := cli.NewApp(testConfig(t, "http://localhost:0/api"), zerolog.Nop(), &out)
	require.NoError(t, err)

	require.ErrorIs(t, app.RequireAuth(), auth.ErrNotAuthenticated)
}

func TestSessionExpiryClearsCredentialsAndPointsAtLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token":"t1","user":{"id":"u1","nickname":"hiro","age_group":"40s"}}`)) //nolint:errcheck
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	app, err := cli.NewApp(testConfig(t, srv.URL), zerolog.Nop(), &out)
	require.NoError(t, err)

	_, err = app.Store.Login(context.Background(), "good@example.com", "correctpw")
	require.NoError(t, err)
	require.NoError(t, app.RequireAuth())

	err = app.Client.Get(context.Background(), "/notifications", nil, nil)
	require.ErrorIs(t, err, transport.ErrSessionExpired)

	require.False(t, app.Store.IsAuthenticated())
	require.ErrorIs(t, app.RequireAuth(), auth.ErrNotAuthenticated)
	require.Contains(t, out.String(), "otonaba login")
}

func TestSessionSurvivesRestartThroughTheCredentialsFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token":"t1","user":{"id":"u1","nickname":"hiro","age_group":"40s"}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)

	var out bytes.Buffer
	app, err := cli.NewApp(cfg, zerolog.Nop(), &out)
	require.NoError(t, err)

	_, err = app.Store.Login(context.Background(), "good@example.com", "correctpw")
	require.NoError(t, err)

	// A fresh App over the same credentials file restores the session.
	restarted, err := cli.NewApp(cfg, zerolog.Nop(), &out)
	require.NoError(t, err)
	require.True(t, restarted.Store.IsAuthenticated())
	require.Equal(t, "hiro", restarted.Store.Current().Nickname)
}
