package remoteauth

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Settings holds the shared secret token and the remote auth endpoint.
// Both values start unset; reading an unset value returns ErrInvalidConfig.
type Settings struct {
	mu      sync.RWMutex
	token   *string
	authURL *string
	now     func() time.Time
	logger  *slog.Logger
}

// NewSettings returns an empty holder with the system clock and no logging.
// The zero value of Settings is equally usable.
func NewSettings() *Settings {
	return &Settings{
		now:    time.Now,
		logger: discardLogger,
	}
}

// SetToken stores the shared secret token
func (s *Settings) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
}

// UnsetToken clears the token so subsequent reads fail
func (s *Settings) UnsetToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
}

// Token returns the shared secret token.
func (s *Settings) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return "", configError("token")
	}
	return *s.token, nil
}

// SetAuthURL stores the remote auth endpoint
func (s *Settings) SetAuthURL(authURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authURL = &authURL
}

// UnsetAuthURL clears the auth URL so subsequent reads fail
func (s *Settings) UnsetAuthURL() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authURL = nil
}

// AuthURL returns the remote auth endpoint.
func (s *Settings) AuthURL() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.authURL == nil {
		return "", configError("auth_url")
	}
	return *s.authURL, nil
}

// WithClock replaces the time source used when no timestamp is supplied
func (s *Settings) WithClock(now func() time.Time) *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
	return s
}

// WithLogger sets the logger used for debug output
func (s *Settings) WithLogger(logger *slog.Logger) *Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *Settings) clock() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Settings) log() *slog.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return discardLogger
	}
	return s.logger
}
