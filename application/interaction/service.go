// Package interaction implements the automation capability shared by the
// validation flows: navigation with retries, selector resolution, timed
// interactions and screenshots.
package interaction

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/config"
)

// Options are the timeouts and capture settings the service applies
type Options struct {
	NavigationTimeout time.Duration
	ElementTimeout    time.Duration
	ActionTimeout     time.Duration
	ScreenshotTimeout time.Duration
	ProbeTimeout      time.Duration
	PollInterval      time.Duration
	TypingDelay       time.Duration
	WaitUntil         string

	ScreenshotStrategy string
	ScreenshotFormat   string
	ScreenshotQuality  int
}

// OptionsFrom - extracts the interaction options from settings
func OptionsFrom(s *config.Settings) Options {
	return Options{
		NavigationTimeout:  s.NavigationTimeout,
		ElementTimeout:     s.ElementTimeout,
		ActionTimeout:      s.ActionTimeout,
		ScreenshotTimeout:  s.ScreenshotTimeout,
		ProbeTimeout:       s.ProbeTimeout,
		PollInterval:       s.PollInterval,
		TypingDelay:        s.TypingDelay,
		WaitUntil:          s.WaitUntil,
		ScreenshotStrategy: s.ScreenshotStrategy,
		ScreenshotFormat:   s.ScreenshotFormat,
		ScreenshotQuality:  s.ScreenshotQuality,
	}
}

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Service implements interfaces.Interactor on top of one page
type Service struct {
	page   interfaces.Page
	store  interfaces.ArtifactStore
	logger *logrus.Logger
	opts   Options

	sleep    SleepFunc
	now      func() time.Time
	fullPage func() bool
}

// NewService - creates the interaction service for page
func NewService(page interfaces.Page, store interfaces.ArtifactStore, logger *logrus.Logger, opts Options) *Service {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 250 * time.Millisecond
	}
	if opts.ScreenshotFormat == "" {
		opts.ScreenshotFormat = "png"
	}
	return &Service{
		page:     page,
		store:    store,
		logger:   logger,
		opts:     opts,
		sleep:    Sleep,
		now:      time.Now,
		fullPage: fullPageFor(opts.ScreenshotStrategy),
	}
}

// WithSleep replaces the wait used between retries and polls
func (s *Service) WithSleep(sleep SleepFunc) *Service {
	s.sleep = sleep
	return s
}

// Sleep waits for d, returning early with the context error when ctx ends
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func fullPageFor(strategy string) func() bool {
	switch strategy {
	case "viewport", "element":
		return func() bool { return false }
	case "random":
		return func() bool { return rand.Intn(2) == 0 }
	}
	return func() bool { return true }
}

func (s *Service) Page() interfaces.Page {
	return s.page
}

// Poll - evaluates cond until it holds, the timeout elapses or ctx ends.
// cond runs at most timeout/PollInterval+1 times and never starts after the
// deadline.
func (s *Service) Poll(ctx context.Context, timeout time.Duration, cond func() bool) bool {
	deadline := s.now().Add(timeout)
	checks := int(timeout / s.opts.PollInterval)
	for i := 0; ; i++ {
		if cond() {
			return true
		}
		if i >= checks || !s.now().Before(deadline) {
			return false
		}
		if err := s.sleep(ctx, s.opts.PollInterval); err != nil {
			return false
		}
	}
}

func (s *Service) Click(ctx context.Context, el interfaces.Element, name string) error {
	return s.act(ctx, "click", name, func() error {
		return el.Click(s.opts.ActionTimeout)
	})
}

func (s *Service) Hover(ctx context.Context, el interfaces.Element, name string) error {
	return s.act(ctx, "hover", name, func() error {
		return el.Hover(s.opts.ActionTimeout)
	})
}

func (s *Service) Fill(ctx context.Context, el interfaces.Element, text, name string) error {
	return s.act(ctx, "fill", name, func() error {
		return el.Fill(text, s.opts.ActionTimeout)
	})
}

func (s *Service) Press(ctx context.Context, el interfaces.Element, key, name string) error {
	return s.act(ctx, "press "+key, name, func() error {
		return el.Press(key, s.opts.ActionTimeout)
	})
}

func (s *Service) TypeSequentially(ctx context.Context, el interfaces.Element, text, name string) error {
	timeout := s.opts.ActionTimeout + time.Duration(len(text))*s.opts.TypingDelay
	return s.act(ctx, "type", name, func() error {
		return el.TypeSequentially(text, s.opts.TypingDelay, timeout)
	})
}

// IsClickable - reports whether el is enabled within the element timeout
func (s *Service) IsClickable(ctx context.Context, el interfaces.Element) bool {
	if ctx.Err() != nil {
		return false
	}
	enabled, err := el.IsEnabled(s.opts.ElementTimeout)
	if err != nil {
		s.logger.Debugf("Clickability check failed: %v", err)
		return false
	}
	return enabled
}

func (s *Service) act(ctx context.Context, op, name string, action func() error) error {
	if err := ctx.Err(); err != nil {
		return entities.NewActionError(entities.KindInteraction, op, name, err)
	}
	if err := action(); err != nil {
		kind := entities.KindInteraction
		if entities.KindOf(err) == entities.KindTimeout {
			kind = entities.KindTimeout
		}
		s.logger.Warnf("Failed to %s '%s': %v", op, name, err)
		return entities.NewActionError(kind, op, name, err)
	}
	s.logger.Debugf("%s '%s'", op, name)
	return nil
}

// ElementScreenshot - scrolls el into view and captures it
func (s *Service) ElementScreenshot(ctx context.Context, el interfaces.Element, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", entities.NewActionError(entities.KindScreenshot, "screenshot", name, err)
	}
	path := s.store.ScreenshotPath(name, s.opts.ScreenshotFormat)

	if err := el.ScrollIntoView(s.opts.ScreenshotTimeout); err != nil {
		s.logger.Debugf("Could not scroll '%s' into view: %v", name, err)
	}
	if err := el.Screenshot(path, s.captureOptions(false)); err != nil {
		s.logger.Errorf("Failed to take element screenshot '%s': %v", name, err)
		return "", entities.NewActionError(entities.KindScreenshot, "screenshot", name, err)
	}

	s.logger.Infof("Element screenshot saved: %s", path)
	return path, nil
}

// PageScreenshot - captures the page, full or viewport per strategy
func (s *Service) PageScreenshot(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", entities.NewActionError(entities.KindScreenshot, "screenshot", name, err)
	}
	path := s.store.ScreenshotPath(name, s.opts.ScreenshotFormat)

	if err := s.page.Screenshot(path, s.captureOptions(s.fullPage())); err != nil {
		s.logger.Errorf("Failed to take screenshot '%s': %v", name, err)
		return "", entities.NewActionError(entities.KindScreenshot, "screenshot", name, err)
	}

	s.logger.Infof("Screenshot saved: %s", path)
	return path, nil
}

func (s *Service) captureOptions(fullPage bool) interfaces.ScreenshotOptions {
	return interfaces.ScreenshotOptions{
		FullPage: fullPage,
		Format:   s.opts.ScreenshotFormat,
		Quality:  s.opts.ScreenshotQuality,
		Timeout:  s.opts.ScreenshotTimeout,
	}
}

// WaitForLoad - waits for the page "load" state
func (s *Service) WaitForLoad(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.page.WaitForLoadState("load", s.opts.NavigationTimeout); err != nil {
		s.logger.Warnf("Page did not reach load state: %v", err)
		return fmt.Errorf("wait for load state: %w", err)
	}
	return nil
}

func (s *Service) CurrentURL() string {
	return s.page.URL()
}

func (s *Service) Title() string {
	title, err := s.page.Title()
	if err != nil {
		s.logger.Debugf("Failed to read page title: %v", err)
		return ""
	}
	return title
}
