package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadOptions defines options for loading configuration from environment variables.
type LoadOptions struct {
	Prefix string // Prefix to prepend to environment variable names (default: "BEAVER_")
	Debug  bool   // Enable debug logging of configuration loading process
}

// Load populates a struct from .env file and environment variables.
// A .env file in the current directory is loaded first when present; variables
// already set in the process environment take precedence over it.
//
// Field tags follow github.com/caarlos0/env:
//   - `env:"VAR_NAME"`: Maps the field to the specified environment variable
//   - `envDefault:"value"`: Provides a default value if env var is not set
//   - `env:"VAR_NAME,required"`: Fails when the variable is missing
//
// Environment variable names are prefixed with LoadOptions.Prefix (defaults to "BEAVER_").
//
// Example:
//
//	type Config struct {
//	    DatabaseURL string `env:"DATABASE_URL"`
//	    Port        int    `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.LoadOptions{Prefix: "MYAPP_"})
//	// Will look for MYAPP_DATABASE_URL, MYAPP_PORT
func Load(cfg interface{}, opts ...LoadOptions) error {
	options := LoadOptions{Prefix: "BEAVER_"} // Default
	if len(opts) > 0 {
		options = opts[0]
	}
	// Silently try to load .env file, ignore if not found
	_ = godotenv.Load()

	envOpts := env.Options{Prefix: options.Prefix}
	if options.Debug || debugEnabled() {
		envOpts.OnSet = func(tag string, value interface{}, isDefault bool) {
			fmt.Printf("[BEAVER] %s=%s\n", tag, displayValue(tag, value))
		}
	}

	if err := env.ParseWithOptions(cfg, envOpts); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

func debugEnabled() bool {
	if os.Getenv("BEAVER_CONFIG_DEBUG") == "true" {
		return true
	}
	switch os.Getenv("env") {
	case "development", "dev", "test":
		return true
	}
	return false
}

// displayValue masks values of secret-looking variables in debug output.
func displayValue(name string, value interface{}) string {
	s := fmt.Sprint(value)
	upper := strings.ToUpper(name)
	for _, marker := range []string{"TOKEN", "SECRET", "KEY", "PASSWORD"} {
		if strings.Contains(upper, marker) && s != "" {
			return "****"
		}
	}
	return s
}
