// Package cli wires configuration, logging, storage, the browser and the
// validator together for the command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"web_validator/application/validator"
	"web_validator/domain/entities"
	"web_validator/infrastructure/browser"
	"web_validator/infrastructure/config"
	"web_validator/infrastructure/locators"
	"web_validator/infrastructure/logging"
	"web_validator/infrastructure/report"
	"web_validator/infrastructure/storage"
)

const defaultEnvFile = ".env"

type options struct {
	envFile   string
	url       string
	browser   string
	selectors string
	output    string
	headless  *bool
	install   *bool
}

type App struct {
	settings  *config.Settings
	logger    *logrus.Logger
	closer    io.Closer
	validator *validator.Validator
}

// Run - runs the command line program and returns the process exit code
func Run(args []string) int {
	app, err := NewApp(args, os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return int(entities.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return int(exitCodeForError(err))
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return int(app.Run(ctx))
}

// NewApp - parses flags, loads the environment and builds every component
func NewApp(args []string, stdout, stderr io.Writer) (*App, error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return nil, withExitCode(err, entities.ExitUnknownError)
	}

	if err := loadEnvFile(opts.envFile, stderr); err != nil {
		return nil, withExitCode(err, entities.ExitUnknownError)
	}

	settings, err := config.Load()
	if err != nil {
		return nil, withExitCode(fmt.Errorf("invalid configuration: %w", err), entities.ExitUnknownError)
	}
	opts.apply(settings)
	if err := settings.Validate(); err != nil {
		return nil, withExitCode(fmt.Errorf("invalid configuration: %w", err), entities.ExitUnknownError)
	}

	store, err := storage.NewWorkspace(storage.Dirs{
		Screenshots: settings.ScreenshotDir,
		Reports:     settings.ReportsDir,
		Logs:        settings.LogsDir,
		Traces:      settings.TracesDir,
	})
	if err != nil {
		return nil, withExitCode(err, entities.ExitUnknownError)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:     settings.LogLevel,
		LogToFile: settings.LogToFile,
		LogsDir:   settings.LogsDir,
		Output:    stdout,
	})
	if err != nil {
		return nil, withExitCode(err, entities.ExitUnknownError)
	}

	catalog := locators.Default()
	if settings.SelectorsFile != "" {
		catalog, err = locators.LoadFile(settings.SelectorsFile)
		if err != nil {
			closer.Close()
			return nil, withExitCode(err, entities.ExitUnknownError)
		}
		logger.Infof("Loaded selectors from %s", settings.SelectorsFile)
	}

	reporter := report.New(store, logger, report.Options{
		GenerateJSON:     settings.GenerateJSONReport,
		GenerateHTML:     settings.GenerateHTMLReport,
		EmbedScreenshots: settings.EmbedScreenshots,
		ScreenshotFormat: settings.ScreenshotFormat,
		Generator:        fmt.Sprintf("%s v%s", config.ProjectName, config.ProjectVersion),
	})

	launcher := browser.NewLauncher(settings, store, logger)

	return &App{
		settings:  settings,
		logger:    logger,
		closer:    closer,
		validator: validator.NewValidator(settings, launcher, catalog, reporter, store, logger),
	}, nil
}

// Run - executes one validation
func (a *App) Run(ctx context.Context) entities.ExitCode {
	return a.validator.Run(ctx)
}

// Close - flushes the log file
func (a *App) Close() error {
	return a.closer.Close()
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("web-validator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.envFile, "env-file", defaultEnvFile, "path to a .env file")
	fs.StringVar(&opts.url, "url", "", "target URL (overrides TARGET_URL)")
	fs.StringVar(&opts.browser, "browser", "", "chromium, firefox or webkit (overrides BROWSER_TYPE)")
	fs.StringVar(&opts.selectors, "selectors", "", "YAML file overriding the built-in selectors")
	fs.StringVar(&opts.output, "output", "", "directory for screenshots, reports, logs and traces")
	headless := fs.Bool("headless", true, "run the browser headless (overrides HEADLESS)")
	install := fs.Bool("install", false, "install the browser driver before launching")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			opts.headless = headless
		case "install":
			opts.install = install
		}
	})
	return opts, nil
}

// apply overrides settings with the flags given on the command line
func (o *options) apply(s *config.Settings) {
	if o.url != "" {
		s.TargetURL = o.url
	}
	if o.browser != "" {
		s.BrowserType = strings.ToLower(strings.TrimSpace(o.browser))
	}
	if o.selectors != "" {
		s.SelectorsFile = o.selectors
	}
	if o.output != "" {
		s.SetOutputDir(o.output)
	}
	if o.headless != nil {
		s.Headless = *o.headless
	}
	if o.install != nil {
		s.InstallBrowsers = *o.install
	}
}

// loadEnvFile loads path into the environment. A missing default file only
// produces a warning.
func loadEnvFile(path string, stderr io.Writer) error {
	if err := godotenv.Load(path); err != nil {
		if path == defaultEnvFile && errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(stderr, "Warning: .env file not found, using environment variables")
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
