// Package config loads struct-based configuration from environment variables
// and an optional .env file.
//
// Every package in the kit builds its Config this way, so a single prefix
// convention covers the whole toolkit:
//
//	var cfg remoteauth.Config
//	err := config.Load(&cfg) // reads BEAVER_REMOTEAUTH_TOKEN, BEAVER_REMOTEAUTH_URL
//
// Use a custom prefix to avoid collisions between applications:
//
//	err := config.Load(&cfg, config.LoadOptions{Prefix: "MYAPP_"})
//
// Set BEAVER_CONFIG_DEBUG=true (or LoadOptions.Debug) to print each resolved
// variable. Values of variables whose names look like secrets are masked.
package config
