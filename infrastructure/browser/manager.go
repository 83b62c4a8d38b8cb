package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"web_validator/domain/interfaces"
	"web_validator/infrastructure/config"
)

type launcher struct {
	settings *config.Settings
	store    interfaces.ArtifactStore
	logger   *logrus.Logger
}

// NewLauncher - creates a launcher that starts playwright sessions for settings
func NewLauncher(settings *config.Settings, store interfaces.ArtifactStore, logger *logrus.Logger) interfaces.BrowserLauncher {
	return &launcher{
		settings: settings,
		store:    store,
		logger:   logger,
	}
}

// Launch - starts playwright, the browser, one context and one page
func (l *launcher) Launch(ctx context.Context) (interfaces.BrowserSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := l.settings

	if s.InstallBrowsers {
		l.logger.Infof("Installing %s browser driver...", s.BrowserType)
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{s.BrowserType}}); err != nil {
			return nil, fmt.Errorf("failed to install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	session := &session{pw: pw, logger: l.logger}

	browserType, err := selectBrowserType(pw, s.BrowserType)
	if err != nil {
		session.Close()
		return nil, err
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.Headless),
	}
	if !s.Headless && s.BrowserType == "chromium" {
		launchOptions.Args = []string{"--start-maximized"}
	}

	l.logger.Infof("Launching %s (headless: %t)", s.BrowserType, s.Headless)
	session.browser, err = browserType.Launch(launchOptions)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.ViewportWidth,
			Height: s.ViewportHeight,
		},
	}
	if s.UserAgent != "" {
		contextOptions.UserAgent = playwright.String(s.UserAgent)
	}

	session.context, err = session.browser.NewContext(contextOptions)
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	if s.EnableTracing {
		err := session.context.Tracing().Start(playwright.TracingStartOptions{
			Screenshots: playwright.Bool(s.TraceScreenshots),
			Snapshots:   playwright.Bool(s.TraceSnapshots),
		})
		if err != nil {
			l.logger.Warnf("Failed to start tracing: %v", err)
		} else {
			session.tracePath = l.store.TracePath(fmt.Sprintf("trace_%s.zip", time.Now().Format("20060102_150405")))
		}
	}

	session.page, err = session.context.NewPage()
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	session.page.SetDefaultTimeout(float64(s.ElementTimeout.Milliseconds()))
	session.page.SetDefaultNavigationTimeout(float64(s.NavigationTimeout.Milliseconds()))

	l.logger.Info("Browser session ready")
	return session, nil
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "chromium", "":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser type: %s", name)
}

type session struct {
	pw        *playwright.Playwright
	browser   playwright.Browser
	context   playwright.BrowserContext
	page      playwright.Page
	tracePath string
	logger    *logrus.Logger

	closeOnce sync.Once
	closeErr  error
}

func (s *session) Page() interfaces.Page {
	return newPage(s.page)
}

// TracePath - returns the trace archive written on Close. It is empty without
// tracing or when the trace could not be saved.
func (s *session) TracePath() string {
	return s.tracePath
}

// Close - flushes the trace and closes page, context, browser and driver.
// Errors about already closed targets are ignored.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.close()
	})
	return s.closeErr
}

func (s *session) close() error {
	var errs []error

	if s.context != nil && s.tracePath != "" {
		if err := s.context.Tracing().Stop(s.tracePath); err != nil {
			s.logger.Warnf("Failed to save trace: %v", err)
			s.tracePath = ""
		} else {
			s.logger.Infof("Trace saved to %s", s.tracePath)
		}
	}

	if s.page != nil {
		if err := s.page.Close(); err != nil && !isClosedError(err) {
			errs = append(errs, fmt.Errorf("failed to close page: %w", err))
		}
		s.page = nil
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil && !isClosedError(err) {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedError(err) {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		s.pw = nil
	}

	return errors.Join(errs...)
}

func isClosedError(err error) bool {
	if errors.Is(err, playwright.ErrTargetClosed) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}
