// Package credsfile persists session credentials as a single JSON document on
// disk. The token and the serialized user live in one file written atomically,
// so the store is always either absent or complete.
package credsfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/auth"
)

var _ auth.CredentialsRepo = (*Repo)(nil)

// Repo stores credentials at a fixed path, e.g.
// ~/.config/otonaba/credentials.json.
type Repo struct {
	path string
}

// New creates a file-backed credentials repo at the given path.
func New(path string) *Repo {
	return &Repo{path: path}
}

// Write persists the credentials via a temp file and rename, so a crash
// mid-write never leaves a partial document behind.
func (r *Repo) Write(creds auth.Credentials) error {
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[Repo.Write] marshal credentials")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "[Repo.Write] create credentials dir")
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return errors.Wrap(err, "[Repo.Write] create temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrap(err, "[Repo.Write] write temp file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrap(err, "[Repo.Write] chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "[Repo.Write] close temp file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrap(err, "[Repo.Write] rename into place")
	}
	return nil
}

// Read returns the stored credentials. A missing, unreadable, or corrupt file
// reads as absent.
func (r *Repo) Read() (auth.Credentials, bool) {
	payload, err := os.ReadFile(r.path)
	if err != nil {
		return auth.Credentials{}, false
	}

	var creds auth.Credentials
	if err := json.Unmarshal(payload, &creds); err != nil {
		return auth.Credentials{}, false
	}
	if creds.Token == "" {
		return auth.Credentials{}, false
	}
	return creds, true
}

// Clear removes the credentials file. A file that is already gone is not an error.
func (r *Repo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[Repo.Clear] remove credentials file")
	}
	return nil
}

// Token returns the stored bearer token, or "" when no credentials are stored.
func (r *Repo) Token() string {
	creds, ok := r.Read()
	if !ok {
		return ""
	}
	return creds.Token
}
