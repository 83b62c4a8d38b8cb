// Package browsertest provides an in-memory page and element implementing
// the automation interfaces, for tests that must not start a browser.
// Values are not safe for concurrent use.
package browsertest

import (
	"errors"
	"fmt"
	"os"
	"time"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
)

// Response is a fake navigation response carrying only a status code
type Response int

func (r Response) Status() int { return int(r) }

// GotoResult scripts the outcome of one Goto call
type GotoResult struct {
	Status     int
	NoResponse bool
	Err        error
}

// Page is a fake page. Elements maps selectors to their matches in order.
type Page struct {
	Elements map[string][]*Element

	// Results scripts consecutive Goto calls; the last entry repeats.
	// Without results every navigation answers 200.
	Results []GotoResult
	GotoFn  func(url string, opts interfaces.GotoOptions) (interfaces.Response, error)

	TitleText     string
	TitleErr      error
	CurrentURL    string
	LoadStateErr  error
	ScreenshotErr error

	Lookups     []string
	GotoCalls   []string
	LoadStates  []string
	Screenshots []string
	FullPage    []bool
}

// NewPage creates an empty fake page
func NewPage() *Page {
	return &Page{Elements: make(map[string][]*Element)}
}

// Add registers matches for selector and returns the page for chaining
func (p *Page) Add(selector string, elements ...*Element) *Page {
	p.Elements[selector] = append(p.Elements[selector], elements...)
	return p
}

func (p *Page) First(selector string) interfaces.Element {
	p.Lookups = append(p.Lookups, selector)
	return first(p.Elements, selector)
}

func (p *Page) All(selector string) ([]interfaces.Element, error) {
	p.Lookups = append(p.Lookups, selector)
	return all(p.Elements, selector), nil
}

func (p *Page) Goto(url string, opts interfaces.GotoOptions) (interfaces.Response, error) {
	p.GotoCalls = append(p.GotoCalls, url)
	if p.GotoFn != nil {
		return p.GotoFn(url, opts)
	}

	result := GotoResult{Status: 200}
	if n := len(p.Results); n > 0 {
		idx := len(p.GotoCalls) - 1
		if idx >= n {
			idx = n - 1
		}
		result = p.Results[idx]
	}

	if result.Err != nil {
		return nil, result.Err
	}
	p.CurrentURL = url
	if result.NoResponse {
		return nil, nil
	}
	return Response(result.Status), nil
}

func (p *Page) WaitForLoadState(state string, timeout time.Duration) error {
	p.LoadStates = append(p.LoadStates, state)
	return p.LoadStateErr
}

func (p *Page) Screenshot(path string, opts interfaces.ScreenshotOptions) error {
	if p.ScreenshotErr != nil {
		return p.ScreenshotErr
	}
	p.Screenshots = append(p.Screenshots, path)
	p.FullPage = append(p.FullPage, opts.FullPage)
	return writeImage(path)
}

func (p *Page) Title() (string, error) {
	return p.TitleText, p.TitleErr
}

func (p *Page) URL() string {
	return p.CurrentURL
}

// Element is a fake element. The zero value is attached but hidden.
type Element struct {
	Name      string
	Visible   bool
	VisibleFn func() bool
	Enabled   bool
	Attrs     map[string]string
	Text      string
	Children  map[string][]*Element

	// EvalFn answers Evaluate; EvalResult is returned when it is nil
	EvalFn     func(expression string) (interface{}, error)
	EvalResult interface{}

	OnClick func()
	OnType  func(typed string)

	ClickErr      error
	HoverErr      error
	FillErr       error
	PressErr      error
	TypeErr       error
	ScreenshotErr error

	Clicks      int
	Hovers      int
	Filled      []string
	Typed       string
	Pressed     []string
	Screenshots []string

	// AttributeTimeouts records the timeout of every Attribute call
	AttributeTimeouts []time.Duration

	missing bool
}

// NewElement creates a visible, enabled element
func NewElement(name string) *Element {
	return &Element{Name: name, Visible: true, Enabled: true}
}

// Hidden creates an attached element that never becomes visible
func Hidden(name string) *Element {
	return &Element{Name: name}
}

// Add registers a child match for selector and returns the element
func (e *Element) Add(selector string, children ...*Element) *Element {
	if e.Children == nil {
		e.Children = make(map[string][]*Element)
	}
	e.Children[selector] = append(e.Children[selector], children...)
	return e
}

// IsMissing reports whether the handle matched nothing
func (e *Element) IsMissing() bool {
	return e.missing
}

func (e *Element) First(selector string) interfaces.Element {
	return first(e.Children, selector)
}

func (e *Element) All(selector string) ([]interfaces.Element, error) {
	return all(e.Children, selector), nil
}

func (e *Element) visible() bool {
	if e.missing {
		return false
	}
	if e.VisibleFn != nil {
		return e.VisibleFn()
	}
	return e.Visible
}

func (e *Element) WaitVisible(timeout time.Duration) error {
	if e.visible() {
		return nil
	}
	return fmt.Errorf("%w: waiting for %s to be visible (%s)", entities.ErrTimeout, e.Name, timeout)
}

func (e *Element) IsVisible() (bool, error) {
	return e.visible(), nil
}

func (e *Element) IsEnabled(timeout time.Duration) (bool, error) {
	if e.missing {
		return false, e.notFound()
	}
	return e.Enabled, nil
}

func (e *Element) Click(timeout time.Duration) error {
	if err := e.actionable(e.ClickErr); err != nil {
		return err
	}
	e.Clicks++
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

func (e *Element) Hover(timeout time.Duration) error {
	if err := e.actionable(e.HoverErr); err != nil {
		return err
	}
	e.Hovers++
	return nil
}

func (e *Element) Fill(text string, timeout time.Duration) error {
	if err := e.actionable(e.FillErr); err != nil {
		return err
	}
	e.Filled = append(e.Filled, text)
	e.Typed = text
	return nil
}

func (e *Element) TypeSequentially(text string, delay, timeout time.Duration) error {
	if err := e.actionable(e.TypeErr); err != nil {
		return err
	}
	for _, r := range text {
		e.Typed += string(r)
		if e.OnType != nil {
			e.OnType(e.Typed)
		}
	}
	return nil
}

func (e *Element) Press(key string, timeout time.Duration) error {
	if err := e.actionable(e.PressErr); err != nil {
		return err
	}
	e.Pressed = append(e.Pressed, key)
	return nil
}

func (e *Element) ScrollIntoView(timeout time.Duration) error {
	return e.actionable(nil)
}

func (e *Element) Screenshot(path string, opts interfaces.ScreenshotOptions) error {
	if err := e.actionable(e.ScreenshotErr); err != nil {
		return err
	}
	e.Screenshots = append(e.Screenshots, path)
	return writeImage(path)
}

func (e *Element) Attribute(name string, timeout time.Duration) (string, error) {
	e.AttributeTimeouts = append(e.AttributeTimeouts, timeout)
	if e.missing {
		return "", e.notFound()
	}
	return e.Attrs[name], nil
}

func (e *Element) InnerText(timeout time.Duration) (string, error) {
	if e.missing {
		return "", e.notFound()
	}
	return e.Text, nil
}

func (e *Element) Evaluate(expression string) (interface{}, error) {
	if e.missing {
		return nil, e.notFound()
	}
	if e.EvalFn != nil {
		return e.EvalFn(expression)
	}
	return e.EvalResult, nil
}

func (e *Element) actionable(scripted error) error {
	if e.missing {
		return e.notFound()
	}
	if !e.visible() {
		return fmt.Errorf("%w: %s is not visible", entities.ErrTimeout, e.Name)
	}
	return scripted
}

func (e *Element) notFound() error {
	return fmt.Errorf("%w: no element matches %s", entities.ErrTimeout, e.Name)
}

func first(elements map[string][]*Element, selector string) interfaces.Element {
	if matches := elements[selector]; len(matches) > 0 {
		return matches[0]
	}
	return &Element{Name: selector, missing: true}
}

func all(elements map[string][]*Element, selector string) []interfaces.Element {
	matches := elements[selector]
	out := make([]interfaces.Element, 0, len(matches))
	for _, m := range matches {
		out = append(out, m)
	}
	return out
}

// ErrBoom is a generic failure for scripting errors in tests
var ErrBoom = errors.New("boom")

func writeImage(path string) error {
	return os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0644)
}
