package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gobeaver/support-kit/config"
	"github.com/gobeaver/support-kit/remoteauth"
)

// TestDotEnvFile tests that settings are picked up from a .env file in the working directory
func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	dotenv := "BEAVER_REMOTEAUTH_TOKEN=dotenv-token\nBEAVER_REMOTEAUTH_URL=https://support.example.com/access/remote\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("BEAVER_REMOTEAUTH_TOKEN")
		os.Unsetenv("BEAVER_REMOTEAUTH_URL")
	})

	s, err := remoteauth.WithPrefix("BEAVER_").New()
	if err != nil {
		t.Fatalf("Failed to create settings: %v", err)
	}

	u, err := s.BuildURL(remoteauth.Fields{Name: "blah", Email: "test@example.com"})
	if err != nil {
		t.Fatalf("Failed to build URL: %v", err)
	}
	if !strings.HasPrefix(u, "https://support.example.com/access/remote?") {
		t.Errorf("Unexpected URL: %s", u)
	}
}

// TestEnvironmentOverridesDotEnv tests that process variables win over the .env file
func TestEnvironmentOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OVR_REMOTEAUTH_TOKEN=from-file\n"), 0o600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv("OVR_REMOTEAUTH_TOKEN", "from-env")

	cfg, err := remoteauth.GetConfig(config.LoadOptions{Prefix: "OVR_"})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Token != "from-env" {
		t.Errorf("Expected token 'from-env', got '%s'", cfg.Token)
	}
}

// TestMultipleInstances tests that differently prefixed settings stay independent
func TestMultipleInstances(t *testing.T) {
	t.Setenv("EU_REMOTEAUTH_TOKEN", "eu-token")
	t.Setenv("EU_REMOTEAUTH_URL", "https://eu.support.example.com/access/remote")
	t.Setenv("US_REMOTEAUTH_TOKEN", "us-token")
	t.Setenv("US_REMOTEAUTH_URL", "https://us.support.example.com/access/remote")

	eu, err := remoteauth.WithPrefix("EU_").New()
	if err != nil {
		t.Fatalf("Failed to create EU settings: %v", err)
	}
	us, err := remoteauth.WithPrefix("US_").New()
	if err != nil {
		t.Fatalf("Failed to create US settings: %v", err)
	}

	src := remoteauth.Fields{Name: "blah", Email: "test@example.com"}
	euURL, err := eu.BuildURL(src)
	if err != nil {
		t.Fatalf("Failed to build EU URL: %v", err)
	}
	usURL, err := us.BuildURL(src)
	if err != nil {
		t.Fatalf("Failed to build US URL: %v", err)
	}

	if !strings.HasPrefix(euURL, "https://eu.") || !strings.HasPrefix(usURL, "https://us.") {
		t.Errorf("Settings leaked between instances: %s / %s", euURL, usURL)
	}
}

// TestEmptyPrefix tests loading variables without any prefix
func TestEmptyPrefix(t *testing.T) {
	t.Setenv("REMOTEAUTH_TOKEN", "bare-token")

	cfg, err := remoteauth.GetConfig(config.LoadOptions{Prefix: ""})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Token != "bare-token" {
		t.Errorf("Expected token 'bare-token', got '%s'", cfg.Token)
	}
	if cfg.AuthURL != "" {
		t.Errorf("Expected empty auth url, got '%s'", cfg.AuthURL)
	}
}

// TestUnsetEnvironment tests that missing variables surface lazily as configuration errors
func TestUnsetEnvironment(t *testing.T) {
	s, err := remoteauth.WithPrefix("UNSET_").New()
	if err != nil {
		t.Fatalf("Missing variables should not fail construction: %v", err)
	}

	_, err = s.BuildURL(remoteauth.Fields{Name: "blah", Email: "test@example.com"})
	if !errors.Is(err, remoteauth.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

// chdir changes the working directory for the duration of the test.
// It mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
