package interfaces

import (
	"context"
	"time"
)

// Scope is anything elements can be looked up in: the whole page or
// another element.
type Scope interface {
	// First returns a lazy handle to the first element matching selector.
	// Resolution happens when the handle is used.
	First(selector string) Element

	// All returns handles to every element currently matching selector
	All(selector string) ([]Element, error)
}

// Element is an opaque handle to a UI element owned by the automation layer
type Element interface {
	Scope

	// WaitVisible waits until the element is visible
	WaitVisible(timeout time.Duration) error

	// IsVisible checks visibility without waiting
	IsVisible() (bool, error)

	// IsEnabled checks that the element is enabled
	IsEnabled(timeout time.Duration) (bool, error)

	Click(timeout time.Duration) error
	Hover(timeout time.Duration) error
	Fill(text string, timeout time.Duration) error

	// TypeSequentially types text key by key with delay between keys
	TypeSequentially(text string, delay, timeout time.Duration) error

	// Press presses a single key (e.g. "Enter") on the element
	Press(key string, timeout time.Duration) error

	ScrollIntoView(timeout time.Duration) error

	// Screenshot captures the element to path
	Screenshot(path string, opts ScreenshotOptions) error

	// Attribute returns the value of an HTML attribute, "" when absent
	Attribute(name string, timeout time.Duration) (string, error)

	// InnerText returns the rendered text of the element
	InnerText(timeout time.Duration) (string, error)

	// Evaluate runs a JS function with the element as its first argument
	Evaluate(expression string) (interface{}, error)
}

// Response is the main resource response of a navigation
type Response interface {
	Status() int
}

// GotoOptions configures a full page navigation
type GotoOptions struct {
	WaitUntil string
	Timeout   time.Duration
}

// ScreenshotOptions configures page and element captures
type ScreenshotOptions struct {
	FullPage bool
	Format   string
	Quality  int
	Timeout  time.Duration
}

// Page is the single browser page a run operates on
type Page interface {
	Scope

	// Goto navigates to url. A nil Response with a nil error means the
	// navigation produced no response.
	Goto(url string, opts GotoOptions) (Response, error)

	// WaitForLoadState waits for the given load state (load, domcontentloaded, networkidle)
	WaitForLoadState(state string, timeout time.Duration) error

	Screenshot(path string, opts ScreenshotOptions) error
	Title() (string, error)
	URL() string
}

// BrowserSession owns the browser, its context and the page for one run
type BrowserSession interface {
	Page() Page

	// Close releases every browser resource; safe to call more than once
	Close() error

	// TracePath is the trace archive flushed by Close, "" when none was written
	TracePath() string
}

// BrowserLauncher starts browser sessions
type BrowserLauncher interface {
	Launch(ctx context.Context) (BrowserSession, error)
}
