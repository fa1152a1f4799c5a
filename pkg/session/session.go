// Package session tracks whether the operator is signed in to the desk. The
// authenticated flag is persisted under a fixed key in a key-value Storage so
// it survives between runs. A Session is created once per process and passed
// explicitly to whatever needs it.
package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// TokenKey is the storage key holding the authentication flag.
	TokenKey = "auth-token"

	// TokenValue marks an authenticated session.
	TokenValue = "authenticated"
)

var (
	// ErrInvalidCredentials is returned by Login for any credential mismatch.
	ErrInvalidCredentials = errors.New("Invalid email or password") //nolint:staticcheck // user-facing message

	// ErrNotAuthenticated is returned by Require while logged out.
	ErrNotAuthenticated = errors.New("not logged in; run `agentdesk login` first")
)

// Storage is the persistence the session needs. localstore.Store satisfies it.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Credentials is the single operator account accepted by Login.
type Credentials struct {
	Email    string
	Password string
}

// Session owns the authentication flag.
type Session struct {
	store  Storage
	creds  Credentials
	log    *zap.Logger
	authed bool
}

// New creates a session. Call Init to read the persisted flag.
func New(store Storage, creds Credentials, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	return &Session{store: store, creds: creds, log: log}
}

// Init reads the persisted flag.
func (s *Session) Init() error {
	v, ok := s.store.Get(TokenKey)
	s.authed = ok && v == TokenValue

	s.log.Debug("session initialized", zap.Bool("authenticated", s.authed))

	return nil
}

// Authenticated reports whether the operator is signed in.
func (s *Session) Authenticated() bool { return s.authed }

// Login checks the credentials and persists the flag on success. Email is
// compared case-insensitively.
func (s *Session) Login(email, password string) error {
	if !strings.EqualFold(strings.TrimSpace(email), s.creds.Email) || password != s.creds.Password {
		s.log.Info("login rejected", zap.String("email", email))
		return ErrInvalidCredentials
	}

	if err := s.store.Set(TokenKey, TokenValue); err != nil {
		return fmt.Errorf("session: login: %w", err)
	}

	s.authed = true
	s.log.Info("login succeeded", zap.String("email", email))

	return nil
}

// Logout clears the persisted flag.
func (s *Session) Logout() error {
	if err := s.store.Delete(TokenKey); err != nil {
		return fmt.Errorf("session: logout: %w", err)
	}

	s.authed = false
	s.log.Info("logged out")

	return nil
}

// Require returns ErrNotAuthenticated unless the operator is signed in.
func (s *Session) Require() error {
	if !s.authed {
		return ErrNotAuthenticated
	}

	return nil
}
