package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
)

// pwPage adapts a playwright page to interfaces.Page
type pwPage struct {
	page playwright.Page
}

func newPage(page playwright.Page) *pwPage {
	return &pwPage{page: page}
}

func (p *pwPage) First(selector string) interfaces.Element {
	return &pwElement{locator: p.page.Locator(selector).First()}
}

func (p *pwPage) All(selector string) ([]interfaces.Element, error) {
	return wrapAll(p.page.Locator(selector))
}

func (p *pwPage) Goto(url string, opts interfaces.GotoOptions) (interfaces.Response, error) {
	gotoOptions := playwright.PageGotoOptions{
		Timeout: millis(opts.Timeout),
	}
	if opts.WaitUntil != "" {
		state := playwright.WaitUntilState(opts.WaitUntil)
		gotoOptions.WaitUntil = &state
	}

	resp, err := p.page.Goto(url, gotoOptions)
	if err != nil {
		return nil, translate(err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp, nil
}

func (p *pwPage) WaitForLoadState(state string, timeout time.Duration) error {
	loadState := playwright.LoadState(state)
	return translate(p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   &loadState,
		Timeout: millis(timeout),
	}))
}

func (p *pwPage) Screenshot(path string, opts interfaces.ScreenshotOptions) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(opts.FullPage),
		Type:     screenshotType(opts.Format),
		Quality:  quality(opts),
		Timeout:  millis(opts.Timeout),
	})
	return translate(err)
}

func (p *pwPage) Title() (string, error) {
	title, err := p.page.Title()
	return title, translate(err)
}

func (p *pwPage) URL() string {
	return p.page.URL()
}

// pwElement adapts a playwright locator to interfaces.Element. The locator
// is lazy: nothing is looked up until an action runs.
type pwElement struct {
	locator playwright.Locator
}

func (e *pwElement) First(selector string) interfaces.Element {
	return &pwElement{locator: e.locator.Locator(selector).First()}
}

func (e *pwElement) All(selector string) ([]interfaces.Element, error) {
	return wrapAll(e.locator.Locator(selector))
}

func (e *pwElement) WaitVisible(timeout time.Duration) error {
	return translate(e.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) IsVisible() (bool, error) {
	visible, err := e.locator.IsVisible()
	return visible, translate(err)
}

func (e *pwElement) IsEnabled(timeout time.Duration) (bool, error) {
	enabled, err := e.locator.IsEnabled(playwright.LocatorIsEnabledOptions{
		Timeout: millis(timeout),
	})
	return enabled, translate(err)
}

func (e *pwElement) Click(timeout time.Duration) error {
	return translate(e.locator.Click(playwright.LocatorClickOptions{
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) Hover(timeout time.Duration) error {
	return translate(e.locator.Hover(playwright.LocatorHoverOptions{
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) Fill(text string, timeout time.Duration) error {
	return translate(e.locator.Fill(text, playwright.LocatorFillOptions{
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) TypeSequentially(text string, delay, timeout time.Duration) error {
	return translate(e.locator.PressSequentially(text, playwright.LocatorPressSequentiallyOptions{
		Delay:   playwright.Float(float64(delay.Milliseconds())),
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) Press(key string, timeout time.Duration) error {
	return translate(e.locator.Press(key, playwright.LocatorPressOptions{
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) ScrollIntoView(timeout time.Duration) error {
	return translate(e.locator.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: millis(timeout),
	}))
}

func (e *pwElement) Screenshot(path string, opts interfaces.ScreenshotOptions) error {
	_, err := e.locator.Screenshot(playwright.LocatorScreenshotOptions{
		Path:    playwright.String(path),
		Type:    screenshotType(opts.Format),
		Quality: quality(opts),
		Timeout: millis(opts.Timeout),
	})
	return translate(err)
}

func (e *pwElement) Attribute(name string, timeout time.Duration) (string, error) {
	value, err := e.locator.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: millis(timeout),
	})
	return value, translate(err)
}

func (e *pwElement) InnerText(timeout time.Duration) (string, error) {
	text, err := e.locator.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: millis(timeout),
	})
	return text, translate(err)
}

func (e *pwElement) Evaluate(expression string) (interface{}, error) {
	result, err := e.locator.Evaluate(expression, nil)
	return result, translate(err)
}

func wrapAll(locator playwright.Locator) ([]interfaces.Element, error) {
	locators, err := locator.All()
	if err != nil {
		return nil, translate(err)
	}
	elements := make([]interfaces.Element, 0, len(locators))
	for _, l := range locators {
		elements = append(elements, &pwElement{locator: l})
	}
	return elements, nil
}

// translate maps playwright timeouts onto entities.ErrTimeout and keeps the
// underlying error in the chain.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", entities.ErrTimeout, err)
	}
	return err
}

// millis converts a timeout to the float milliseconds playwright expects.
// Zero leaves the page default in place.
func millis(d time.Duration) *float64 {
	if d <= 0 {
		return nil
	}
	return playwright.Float(float64(d.Milliseconds()))
}

func screenshotType(format string) *playwright.ScreenshotType {
	if format == "jpeg" {
		return playwright.ScreenshotTypeJpeg
	}
	return playwright.ScreenshotTypePng
}

func quality(opts interfaces.ScreenshotOptions) *int {
	if opts.Format != "jpeg" || opts.Quality <= 0 {
		return nil
	}
	return playwright.Int(opts.Quality)
}
