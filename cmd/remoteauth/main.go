package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gobeaver/support-kit/config"
	"github.com/gobeaver/support-kit/remoteauth"
	"github.com/urfave/cli/v2"
)

var (
	gitCommit string
	gitDate   string
	gitTag    string
)

var (
	prefixFlag = &cli.StringFlag{
		Name:  "prefix",
		Usage: "Environment variable prefix",
		Value: "BEAVER_",
	}
	tokenFlag = &cli.StringFlag{
		Name:  "token",
		Usage: "Shared secret token (overrides <prefix>REMOTEAUTH_TOKEN)",
	}
	authURLFlag = &cli.StringFlag{
		Name:  "auth-url",
		Usage: "Remote auth endpoint (overrides <prefix>REMOTEAUTH_URL)",
	}
	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "User's full name",
	}
	emailFlag = &cli.StringFlag{
		Name:  "email",
		Usage: "User's email address",
	}
	externalIDFlag = &cli.StringFlag{
		Name:  "external-id",
		Usage: "Stable user id in the calling application",
	}
	organizationFlag = &cli.StringFlag{
		Name:  "organization",
		Usage: "Organization the user belongs to",
	}
	tagFlag = &cli.StringSliceFlag{
		Name:  "tag",
		Usage: "Tag to apply to the user (repeatable)",
	}
	photoURLFlag = &cli.StringFlag{
		Name:  "photo-url",
		Usage: "URL of the user's profile photo",
	}
	timestampFlag = &cli.Int64Flag{
		Name:  "timestamp",
		Usage: "Claim time in epoch seconds (default: now)",
	}
	jwtFlag = &cli.BoolFlag{
		Name:  "jwt",
		Usage: "Build a JWT single sign-on URL instead of a hashed remote auth URL",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "remoteauth"
	app.EnableBashCompletion = true
	app.Usage = "Generate signed remote authentication URLs"
	app.Flags = []cli.Flag{
		prefixFlag,
		tokenFlag,
		authURLFlag,
		nameFlag,
		emailFlag,
		externalIDFlag,
		organizationFlag,
		tagFlag,
		photoURLFlag,
		timestampFlag,
		jwtFlag,
		debugFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:  "version",
			Usage: "Print version information",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintln(ctx.App.Writer, versionString())
				return nil
			},
		},
	}
	app.Action = run
	return app
}

func versionString() string {
	version := gitTag
	if version == "" {
		version = "dev"
	}
	if gitCommit != "" {
		version += "-" + gitCommit
	}
	if gitDate != "" {
		version += " (" + gitDate + ")"
	}
	return version
}

func initLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func loadSettings(ctx *cli.Context) (*remoteauth.Settings, error) {
	cfg, err := remoteauth.GetConfig(config.LoadOptions{
		Prefix: ctx.String(prefixFlag.Name),
		Debug:  ctx.Bool(debugFlag.Name),
	})
	if err != nil {
		return nil, err
	}
	if ctx.IsSet(tokenFlag.Name) {
		cfg.Token = ctx.String(tokenFlag.Name)
	}
	if ctx.IsSet(authURLFlag.Name) {
		cfg.AuthURL = ctx.String(authURLFlag.Name)
	}
	return remoteauth.New(*cfg)
}

func fieldsFromFlags(ctx *cli.Context) remoteauth.Fields {
	f := remoteauth.Fields{
		Name:           ctx.String(nameFlag.Name),
		Email:          ctx.String(emailFlag.Name),
		ExternalID:     ctx.String(externalIDFlag.Name),
		Organization:   ctx.String(organizationFlag.Name),
		Tags:           remoteauth.JoinTags(ctx.StringSlice(tagFlag.Name)...),
		RemotePhotoURL: ctx.String(photoURLFlag.Name),
	}
	if ctx.IsSet(timestampFlag.Name) {
		f.Timestamp = time.Unix(ctx.Int64(timestampFlag.Name), 0)
	}
	return f
}

func run(ctx *cli.Context) error {
	logger := initLogger(ctx.Bool(debugFlag.Name))

	settings, err := loadSettings(ctx)
	if err != nil {
		logger.Error("Could not load configuration.", "error", err)
		return err
	}
	settings.WithLogger(logger)

	build := settings.BuildURL
	if ctx.Bool(jwtFlag.Name) {
		build = settings.BuildJWTURL
	}

	u, err := build(fieldsFromFlags(ctx))
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, u)
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
