package main

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/gobeaver/support-kit/remoteauth"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"remoteauth"}, args...))
	return strings.TrimSpace(out.String()), err
}

func TestRunBuildsRemoteAuthURL(t *testing.T) {
	out, err := runApp(t,
		"--prefix", "CLITEST_",
		"--token", "the_token",
		"--auth-url", "the_url",
		"--name", "blah",
		"--email", "test@example.com",
		"--tag", "fine looking gentlemen",
		"--tag", "married",
		"--timestamp", "1700000000",
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.HasPrefix(out, "the_url?") {
		t.Fatalf("Unexpected output: %s", out)
	}
	q, err := url.ParseQuery(strings.SplitN(out, "?", 2)[1])
	if err != nil {
		t.Fatalf("Failed to parse query: %v", err)
	}

	want := remoteauth.Hash("the_token", "blah", "test@example.com", "", "", "1700000000")
	if q.Get("hash") != want {
		t.Errorf("hash = %s, want %s", q.Get("hash"), want)
	}
	if q.Get("tags") != "fine looking gentlemen,married" {
		t.Errorf("tags = %s", q.Get("tags"))
	}
}

func TestRunReadsEnvironment(t *testing.T) {
	t.Setenv("CLITEST_REMOTEAUTH_TOKEN", "env_token")
	t.Setenv("CLITEST_REMOTEAUTH_URL", "https://support.example.com/access/remote")

	out, err := runApp(t, "--prefix", "CLITEST_", "--name", "blah", "--email", "test@example.com", "--jwt")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "https://support.example.com/access/remote?jwt=") {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestRunMissingConfiguration(t *testing.T) {
	_, err := runApp(t, "--prefix", "CLITEST_", "--name", "blah", "--email", "test@example.com")
	if !errors.Is(err, remoteauth.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestRunMissingEmail(t *testing.T) {
	_, err := runApp(t, "--prefix", "CLITEST_", "--token", "t", "--auth-url", "u", "--name", "blah")
	if !errors.Is(err, remoteauth.ErrRequiredField) {
		t.Errorf("Expected ErrRequiredField, got: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "dev" {
		t.Errorf("version = %q, want dev", out)
	}
}
