package remoteauth

import (
	"fmt"
	"sync"

	"github.com/gobeaver/support-kit/config"
)

// Global instance management
var (
	defaultSettings *Settings
	defaultOnce     sync.Once
	defaultErr      error
)

// Init initializes the default Settings with optional config. Without an
// explicit config it reads BEAVER_REMOTEAUTH_* from the environment.
func Init(configs ...Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = &configs[0]
		} else {
			cfg, defaultErr = GetConfig(config.LoadOptions{Prefix: "BEAVER_"})
			if defaultErr != nil {
				return
			}
		}

		defaultSettings, defaultErr = New(*cfg)
	})

	return defaultErr
}

// Reset clears the default Settings (for testing)
func Reset() {
	defaultSettings = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Default returns the process-wide Settings, initializing from the
// environment on first use. It returns nil if initialization failed.
func Default() *Settings {
	if defaultSettings == nil {
		Init() // Initialize with defaults if needed
	}
	return defaultSettings
}

func defaultOrErr() (*Settings, error) {
	s := Default()
	if s == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInitialized, defaultErr)
	}
	return s, nil
}

// SetToken stores the token on the default Settings
func SetToken(token string) error {
	s, err := defaultOrErr()
	if err != nil {
		return err
	}
	s.SetToken(token)
	return nil
}

// Token reads the token from the default Settings
func Token() (string, error) {
	s, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return s.Token()
}

// SetAuthURL stores the auth URL on the default Settings
func SetAuthURL(authURL string) error {
	s, err := defaultOrErr()
	if err != nil {
		return err
	}
	s.SetAuthURL(authURL)
	return nil
}

// AuthURL reads the auth URL from the default Settings
func AuthURL() (string, error) {
	s, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return s.AuthURL()
}

// BuildURL builds a remote auth URL with the default Settings
func BuildURL(src Source) (string, error) {
	s, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return s.BuildURL(src)
}

// BuildJWTURL builds a JWT SSO URL with the default Settings
func BuildJWTURL(src Source) (string, error) {
	s, err := defaultOrErr()
	if err != nil {
		return "", err
	}
	return s.BuildJWTURL(src)
}
