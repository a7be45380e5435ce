package remoteauth

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobeaver/support-kit/config"
)

// Config defines the environment configuration for remote auth.
// Empty values leave the corresponding setting unset.
type Config struct {
	// Token is the shared secret agreed with the support platform
	Token string `env:"REMOTEAUTH_TOKEN"`

	// AuthURL is the platform's remote auth endpoint
	AuthURL string `env:"REMOTEAUTH_URL"`
}

// GetConfig returns config loaded from environment
func GetConfig(opts ...config.LoadOptions) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Builder creates Settings from environment variables with a custom prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the default Settings using the builder's prefix
func (b *Builder) Init() error {
	cfg, err := GetConfig(config.LoadOptions{Prefix: b.prefix})
	if err != nil {
		return err
	}
	return Init(*cfg)
}

// New creates Settings using the builder's prefix
func (b *Builder) New() (*Settings, error) {
	cfg, err := GetConfig(config.LoadOptions{Prefix: b.prefix})
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// New creates Settings from cfg. Values left empty stay unset.
func New(cfg Config) (*Settings, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := NewSettings()
	if cfg.Token != "" {
		s.SetToken(cfg.Token)
	}
	if cfg.AuthURL != "" {
		s.SetAuthURL(cfg.AuthURL)
	}
	return s, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg Config) error {
	if cfg.AuthURL == "" {
		return nil
	}
	if strings.Contains(cfg.AuthURL, "?") {
		return fmt.Errorf("auth url must not carry a query string")
	}
	if _, err := url.Parse(cfg.AuthURL); err != nil {
		return fmt.Errorf("auth url: %v", err)
	}
	return nil
}
