package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/otonaba/otonaba-cli/transport"
)

// Store is the single source of truth for who is logged in. The in-memory
// session and the persisted credentials never disagree for longer than one
// operation: every path that sets one sets the other.
type Store struct {
	mu      sync.RWMutex
	session *Credentials

	repo    CredentialsRepo
	client  *transport.Client
	logger  zerolog.Logger
	nowTime func() time.Time
}

// StoreOption modifies a Store instance.
type StoreOption func(*Store)

// WithLogger sets the logger for session lifecycle events.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// NewStore creates a session store over the given credentials repo and
// transport client.
func NewStore(repo CredentialsRepo, client *transport.Client, options ...StoreOption) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[NewStore] credentials repo is required")
	}
	if client == nil {
		return nil, errors.New("[NewStore] transport client is required")
	}

	s := &Store{
		repo:    repo,
		client:  client,
		logger:  zerolog.Nop(),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Restore populates the session from the persisted credentials at startup.
// Absent or malformed credentials leave the session empty; Restore never fails.
func (s *Store) Restore() {
	creds, ok := s.repo.Read()
	if !ok {
		return
	}

	s.mu.Lock()
	s.session = &creds
	s.mu.Unlock()

	s.warnIfExpired(creds.Token)
	s.logger.Debug().Str("nickname", creds.User.Nickname).Msg("session restored")
}

// Login authenticates against the backend. On success the session is set and
// the credentials are persisted in the same operation.
func (s *Store) Login(ctx context.Context, email, password string) (*User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	result, err := Login(ctx, s.client, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.establish(result); err != nil {
		return nil, errors.Wrap(err, "[Store.Login] establish")
	}
	return &result.User, nil
}

// Register creates an account and establishes the session, with the same
// contract as Login.
func (s *Store) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := ValidateRegistration(reg); err != nil {
		return nil, err
	}

	result, err := Register(ctx, s.client, reg)
	if err != nil {
		return nil, err
	}
	if err := s.establish(result); err != nil {
		return nil, errors.Wrap(err, "[Store.Register] establish")
	}
	return &result.User, nil
}

// Logout clears the session and the persisted credentials unconditionally.
// Logging out without a session is a no-op, never an error.
func (s *Store) Logout() {
	s.teardown()
	s.logger.Debug().Msg("logged out")
}

// Expire is the teardown invoked by the transport when the backend rejects the
// bearer token. Idempotent and last-write-wins, same as Logout.
func (s *Store) Expire() {
	s.teardown()
	s.logger.Warn().Msg("session rejected by backend, credentials cleared")
}

// IsAuthenticated reports whether a token is present in the session.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && s.session.Token != ""
}

// Current returns the logged-in user, or nil when there is no session.
func (s *Store) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	user := s.session.User
	return &user
}

// SetUser replaces the session's user after a profile update and keeps the
// persisted copy in step. The token is untouched.
func (s *Store) SetUser(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ErrNotAuthenticated
	}
	s.session.User = user
	if err := s.repo.Write(*s.session); err != nil {
		return errors.Wrap(err, "[Store.SetUser] persist credentials")
	}
	return nil
}

func (s *Store) establish(result *AuthResult) error {
	creds := Credentials{Token: result.Token, User: result.User}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Write(creds); err != nil {
		return errors.Wrap(err, "persist credentials")
	}
	s.session = &creds
	return nil
}

func (s *Store) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.repo.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted credentials")
	}
}

// warnIfExpired flags a restored JWT that is already past its expiry. The token
// is otherwise treated as opaque; non-JWT tokens restore silently.
func (s *Store) warnIfExpired(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(s.nowTime()) {
		s.logger.Warn().Time("expired_at", exp.Time).Msg("restored session token is expired")
	}
}
