package repofakes

import (
	"sync"

	"github.com/otonaba/otonaba-cli/auth"
)

var _ auth.CredentialsRepo = (*FakeCredentialsRepo)(nil)

// FakeCredentialsRepo is an in-memory credentials store for tests.
type FakeCredentialsRepo struct {
	lock   sync.RWMutex
	creds  auth.Credentials
	stored bool

	WriteErr error // returned from Write when set
	ClearErr error // returned from Clear when set
}

func NewFakeCredentialsRepo() *FakeCredentialsRepo {
	return &FakeCredentialsRepo{}
}

func (r *FakeCredentialsRepo) Write(creds auth.Credentials) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.creds = creds
	r.stored = true
	return nil
}

func (r *FakeCredentialsRepo) Read() (auth.Credentials, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if !r.stored || r.creds.Token == "" {
		return auth.Credentials{}, false
	}
	return r.creds, true
}

func (r *FakeCredentialsRepo) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.creds = auth.Credentials{}
	r.stored = false
	return nil
}

func (r *FakeCredentialsRepo) Token() string {
	creds, ok := r.Read()
	if !ok {
		return ""
	}
	return creds.Token
}

// Seed stores credentials directly, bypassing Write errors.
func (r *FakeCredentialsRepo) Seed(creds auth.Credentials) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.creds = creds
	r.stored = true
}
