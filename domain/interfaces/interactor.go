package interfaces

import (
	"context"
	"time"

	"web_validator/domain/entities"
)

// Interactor is the capability shared by every validation flow: resolve
// elements from selector lists, interact with them and capture evidence.
type Interactor interface {
	// Navigate loads url, retrying failed attempts after a fixed delay
	Navigate(ctx context.Context, url string, maxRetries int, retryDelay time.Duration) entities.NavigationOutcome

	// Resolve returns the first visible element of the concept within scope
	// (nil scope means the whole page)
	Resolve(ctx context.Context, concept entities.Concept, scope Scope) (Element, error)

	// ResolveAll returns every element matched by any selector of the concept
	ResolveAll(ctx context.Context, concept entities.Concept, scope Scope) []Element

	// Probe is Resolve without logging, for polling loops
	Probe(concept entities.Concept, scope Scope, timeout time.Duration) (Element, bool)

	// WaitForAny polls until an element of the concept is visible or timeout elapses
	WaitForAny(ctx context.Context, concept entities.Concept, timeout time.Duration) (Element, error)

	// Poll evaluates cond every poll interval until it holds or timeout
	// elapses; it reports whether cond held
	Poll(ctx context.Context, timeout time.Duration, cond func() bool) bool

	Click(ctx context.Context, el Element, name string) error
	Hover(ctx context.Context, el Element, name string) error
	Fill(ctx context.Context, el Element, text, name string) error
	Press(ctx context.Context, el Element, key, name string) error
	TypeSequentially(ctx context.Context, el Element, text, name string) error
	IsClickable(ctx context.Context, el Element) bool

	// ElementScreenshot captures el as <name>.<format> and returns the path
	ElementScreenshot(ctx context.Context, el Element, name string) (string, error)

	// PageScreenshot captures the page as <name>.<format> and returns the path
	PageScreenshot(ctx context.Context, name string) (string, error)

	WaitForLoad(ctx context.Context) error
	CurrentURL() string
	Title() string

	// Page exposes the underlying page for checks that are not element scoped
	Page() Page
}
