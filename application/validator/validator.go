// Package validator runs one complete website validation: browser session,
// navigation, the validation flows and the reports.
package validator

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"web_validator/application/flows"
	"web_validator/application/interaction"
	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/config"
	"web_validator/infrastructure/locators"
)

type Validator struct {
	settings *config.Settings
	launcher interfaces.BrowserLauncher
	catalog  *locators.Catalog
	reporter interfaces.Reporter
	store    interfaces.ArtifactStore
	logger   *logrus.Logger

	now      func() time.Time
	newRunID func() string
	sleep    interaction.SleepFunc
}

// NewValidator - creates a validator for one run
func NewValidator(
	settings *config.Settings,
	launcher interfaces.BrowserLauncher,
	catalog *locators.Catalog,
	reporter interfaces.Reporter,
	store interfaces.ArtifactStore,
	logger *logrus.Logger,
) *Validator {
	return &Validator{
		settings: settings,
		launcher: launcher,
		catalog:  catalog,
		reporter: reporter,
		store:    store,
		logger:   logger,
		now:      time.Now,
		newRunID: func() string { return uuid.NewString() },
		sleep:    interaction.Sleep,
	}
}

// results carries what the summary and the final report keys need
type results struct {
	headerFound bool
	footerFound bool
}

// Run - executes the validation and returns the process exit code. Reports
// are generated on every path, after the browser has been closed.
func (v *Validator) Run(ctx context.Context) (code entities.ExitCode) {
	v.printHeader()
	var res results

	defer func() {
		if r := recover(); r != nil {
			v.logger.Errorf("An unexpected error occurred: %v", r)
			v.logger.Error(string(debug.Stack()))
			code = entities.ExitUnknownError
		}
		if ctx.Err() != nil {
			v.logger.Warn("Validation interrupted.")
			code = entities.ExitInterrupted
		}
		v.finish(code, res)
	}()

	return v.run(ctx, &res)
}

func (v *Validator) run(ctx context.Context, res *results) entities.ExitCode {
	s := v.settings

	session, err := v.launcher.Launch(ctx)
	if err != nil {
		v.logger.Errorf("Failed to start browser: %v", err)
		return entities.ExitUnknownError
	}
	defer func() {
		if err := session.Close(); err != nil {
			v.logger.Warnf("Browser did not close cleanly: %v", err)
		}
		if path := session.TracePath(); path != "" {
			v.reporter.Add("trace_path", path)
		}
	}()

	ui := interaction.NewService(session.Page(), v.store, v.logger, interaction.OptionsFrom(s)).WithSleep(v.sleep)
	v.seedReport()

	v.section("Navigation")
	outcome := ui.Navigate(ctx, s.TargetURL, s.MaxRetries, s.RetryDelay)
	v.reporter.AddMany(map[string]interface{}{
		"navigation_success": outcome.Success,
		"status_code":        outcome.HTTPStatus,
	})
	if !outcome.Success {
		v.logger.Errorf("Navigation to %s failed!", s.TargetURL)
		return entities.ExitNavigationFailed
	}

	ui.WaitForLoad(ctx)

	env := flows.Env{UI: ui, Report: v.reporter, Logger: v.logger}
	takeShots := s.TakeElementScreenshots || s.ScreenshotStrategy == "element"

	steps := []func(){
		func() {
			if !s.ValidateHeader {
				return
			}
			record := flows.NewHeaderFlow(env, v.catalog.Header, flows.HeaderOptions{
				ValidateElements:  s.ValidateHeaderElements,
				TakeScreenshots:   takeShots,
				ScreenshotOnHover: s.ScreenshotOnHover,
				MaxDropdowns:      s.MaxDropdowns,
				HoverTimeout:      s.ProbeTimeout,
			}).Run(ctx)
			res.headerFound = record.HeaderExists
		},
		func() {
			if s.ValidateHome {
				flows.NewHomeFlow(env, v.catalog.Home, takeShots).Run(ctx)
			}
		},
		func() {
			if s.LanguageTarget != "" {
				flows.NewLanguageFlow(env, v.catalog.Header, flows.LanguageOptions{
					Timeout:     s.LanguageTimeout,
					ReadTimeout: s.PollInterval,
				}).Run(ctx, s.LanguageTarget, s.LanguageRestore)
			}
		},
		func() {
			if s.SearchTerm != "" {
				flows.NewSearchFlow(env, v.catalog.Header, flows.SearchOptions{
					Term:           s.SearchTerm,
					Incremental:    s.IncrementalSearch,
					ResultsTimeout: s.SearchTimeout,
					ProbeTimeout:   s.ProbeTimeout,
				}).Run(ctx)
			}
		},
		func() {
			if s.ValidateFooter {
				record := flows.NewFooterFlow(env, v.catalog.Footer, takeShots).Run(ctx)
				res.footerFound = record.FooterExists
			}
		},
	}
	for _, step := range steps {
		if ctx.Err() != nil {
			return entities.ExitInterrupted
		}
		step()
	}

	if path, err := ui.PageScreenshot(ctx, "final_page_state"); err == nil {
		v.reporter.Add("screenshot_path", path)
	}
	v.reporter.Add("page_title", ui.Title())

	return entities.ExitSuccess
}

func (v *Validator) seedReport() {
	v.reporter.AddMany(map[string]interface{}{
		"timestamp": v.now().Format("2006-01-02 15:04:05"),
		"url":       v.settings.TargetURL,
		"browser":   v.settings.BrowserType,
		"viewport":  v.settings.Viewport(),
		"run_id":    v.newRunID(),
	})
}

func (v *Validator) finish(code entities.ExitCode, res results) {
	v.reporter.AddMany(map[string]interface{}{
		"exit_code":    int(code),
		"header_found": res.headerFound,
		"footer_found": res.footerFound,
	})
	paths := v.reporter.Generate()

	v.section("Validation Summary")
	v.logger.Infof("  Exit Code: %d (%s)", int(code), code)
	v.logger.Infof("  Header Found: %t", res.headerFound)
	v.logger.Infof("  Footer Found: %t", res.footerFound)
	for _, path := range paths {
		v.logger.Infof("  Report: %s", path)
	}
	v.logger.Info(strings.Repeat("=", 80))
}

func (v *Validator) printHeader() {
	v.logger.Info(strings.Repeat("=", 80))
	v.logger.Infof("%s v%s", config.ProjectName, config.ProjectVersion)
	v.logger.Info(v.settings.Summary())
}

func (v *Validator) section(title string) {
	bar := strings.Repeat("=", 30)
	v.logger.Infof("%s %s %s", bar, title, bar)
}
