package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jimezsa/jobboard/internal/cmd"
	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cli := cmd.NewCLI()
	applyEnvDefaults(cli)

	versionString := buildVersion()
	parser, err := kong.New(cli,
		kong.Name("jobboard"),
		kong.Description("Terminal job board backed by a local SQLite file."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": versionString},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fallbackUI := ui.New(nil, os.Stdout, os.Stderr, ui.NormalizeColorMode(os.Getenv("JOBBOARD_COLOR")), false)
		fallbackUI.Errorf("%v", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	configDir, err := config.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	database := cfg.Database
	if strings.TrimSpace(cli.DB) != "" {
		database = cli.DB
	}

	colorMode := ui.NormalizeColorMode(cli.Color)
	userInterface := ui.New(os.Stdin, os.Stdout, os.Stderr, colorMode, false)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !userInterface.ColorEnabled}).
		With().Timestamp().Logger()

	runCtx := &cmd.Context{
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
		UI:        userInterface,
		Config:    cfg,
		ConfigDir: configDir,
		Database:  database,
		Logger:    logger,
		Verbose:   cli.Verbose,
		Version:   versionString,
		ColorMode: colorMode,
	}

	if err := kctx.Run(runCtx); err != nil {
		userInterface.Errorf("%v", err)
		os.Exit(1)
	}
}

func buildVersion() string {
	if commit == "" && date == "" {
		return version
	}
	if commit == "" {
		return fmt.Sprintf("%s (%s)", version, date)
	}
	if date == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func applyEnvDefaults(cli *cmd.CLI) {
	if envBool("JOBBOARD_VERBOSE") {
		cli.Verbose = true
	}
	if value := os.Getenv("JOBBOARD_COLOR"); value != "" {
		cli.Color = value
	}
}

func envBool(key string) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
