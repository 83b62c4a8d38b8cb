package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	ProjectName    = "Playwright Website Validator"
	ProjectVersion = "2.0.0"
)

var (
	browserTypes         = []string{"chromium", "firefox", "webkit"}
	waitUntilStates      = []string{"load", "domcontentloaded", "networkidle", "commit"}
	screenshotStrategies = []string{"fullpage", "viewport", "element", "random"}
	screenshotFormats    = []string{"png", "jpeg"}
	logLevels            = []string{"debug", "info", "warning", "warn", "error", "critical", "fatal"}
)

// Settings is the configuration of one validation run. It is built once by
// Load and passed explicitly to every component.
type Settings struct {
	TargetURL string

	BrowserType     string
	Headless        bool
	ViewportWidth   int
	ViewportHeight  int
	UserAgent       string
	InstallBrowsers bool

	NavigationTimeout time.Duration
	ElementTimeout    time.Duration
	ActionTimeout     time.Duration
	ScreenshotTimeout time.Duration
	ProbeTimeout      time.Duration
	LanguageTimeout   time.Duration
	SearchTimeout     time.Duration
	PollInterval      time.Duration

	MaxRetries int
	RetryDelay time.Duration
	WaitUntil  string

	OutputDir     string
	ScreenshotDir string
	ReportsDir    string
	LogsDir       string
	TracesDir     string

	ScreenshotStrategy string
	ScreenshotFormat   string
	ScreenshotQuality  int

	LogLevel  string
	LogToFile bool

	GenerateJSONReport bool
	GenerateHTMLReport bool
	EmbedScreenshots   bool

	ValidateHeader         bool
	ValidateHeaderElements bool
	ValidateFooter         bool
	ValidateHome           bool
	TakeElementScreenshots bool
	ScreenshotOnHover      bool
	MaxDropdowns           int

	SearchTerm        string
	IncrementalSearch bool
	TypingDelay       time.Duration
	LanguageTarget    string
	LanguageRestore   string

	EnableTracing    bool
	TraceScreenshots bool
	TraceSnapshots   bool

	SelectorsFile string
}

// Default - returns settings with the built-in defaults
func Default() *Settings {
	s := &Settings{
		TargetURL:       "https://shopdev.ooredoo.com.kw/",
		BrowserType:     "chromium",
		Headless:        true,
		ViewportWidth:   1920,
		ViewportHeight:  1080,
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		InstallBrowsers: false,

		NavigationTimeout: 60 * time.Second,
		ElementTimeout:    10 * time.Second,
		ActionTimeout:     5 * time.Second,
		ScreenshotTimeout: 5 * time.Second,
		ProbeTimeout:      1 * time.Second,
		LanguageTimeout:   5 * time.Second,
		SearchTimeout:     10 * time.Second,
		PollInterval:      250 * time.Millisecond,

		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		WaitUntil:  "domcontentloaded",

		ScreenshotStrategy: "fullpage",
		ScreenshotFormat:   "png",
		ScreenshotQuality:  90,

		LogLevel:  "info",
		LogToFile: true,

		GenerateJSONReport: true,
		GenerateHTMLReport: true,
		EmbedScreenshots:   true,

		ValidateHeader:         true,
		ValidateHeaderElements: true,
		ValidateFooter:         true,
		ValidateHome:           true,
		TakeElementScreenshots: true,
		ScreenshotOnHover:      true,
		MaxDropdowns:           5,

		SearchTerm:        "iPhone 13",
		IncrementalSearch: false,
		TypingDelay:       200 * time.Millisecond,
		LanguageTarget:    "ar",
		LanguageRestore:   "en",

		EnableTracing:    false,
		TraceScreenshots: true,
		TraceSnapshots:   true,
	}
	s.SetOutputDir(".")
	return s
}

// SetOutputDir points every artifact directory below dir.
func (s *Settings) SetOutputDir(dir string) {
	s.OutputDir = dir
	s.ScreenshotDir = filepath.Join(dir, "screenshots")
	s.ReportsDir = filepath.Join(dir, "reports")
	s.LogsDir = filepath.Join(dir, "logs")
	s.TracesDir = filepath.Join(dir, "traces")
}

// Load - builds settings from defaults overridden by environment variables.
// The caller is expected to have loaded a .env file first, and to call
// Validate once every override has been applied.
func Load() (*Settings, error) {
	s := Default()
	if err := s.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return s, nil
}

type lookupFunc func(key string) (string, bool)

func (s *Settings) applyEnv(lookup lookupFunc) error {
	env := envReader{lookup: lookup}

	env.str("TARGET_URL", &s.TargetURL)
	env.lower("BROWSER_TYPE", &s.BrowserType)
	env.boolean("HEADLESS", &s.Headless)
	env.integer("VIEWPORT_WIDTH", &s.ViewportWidth)
	env.integer("VIEWPORT_HEIGHT", &s.ViewportHeight)
	env.str("USER_AGENT", &s.UserAgent)
	env.boolean("INSTALL_BROWSERS", &s.InstallBrowsers)

	env.millis("NAVIGATION_TIMEOUT", &s.NavigationTimeout)
	env.millis("ELEMENT_TIMEOUT", &s.ElementTimeout)
	env.millis("ACTION_TIMEOUT", &s.ActionTimeout)
	env.millis("SCREENSHOT_TIMEOUT", &s.ScreenshotTimeout)
	env.millis("PROBE_TIMEOUT", &s.ProbeTimeout)
	env.millis("LANGUAGE_TIMEOUT", &s.LanguageTimeout)
	env.millis("SEARCH_TIMEOUT", &s.SearchTimeout)
	env.millis("POLL_INTERVAL", &s.PollInterval)

	env.integer("MAX_RETRIES", &s.MaxRetries)
	env.seconds("RETRY_DELAY", &s.RetryDelay)
	env.lower("WAIT_UNTIL", &s.WaitUntil)

	if dir, ok := lookup("OUTPUT_DIR"); ok && strings.TrimSpace(dir) != "" {
		s.SetOutputDir(strings.TrimSpace(dir))
	}

	env.lower("SCREENSHOT_STRATEGY", &s.ScreenshotStrategy)
	env.lower("SCREENSHOT_FORMAT", &s.ScreenshotFormat)
	env.integer("SCREENSHOT_QUALITY", &s.ScreenshotQuality)

	env.lower("LOG_LEVEL", &s.LogLevel)
	env.boolean("LOG_TO_FILE", &s.LogToFile)

	env.boolean("GENERATE_JSON_REPORT", &s.GenerateJSONReport)
	env.boolean("GENERATE_HTML_REPORT", &s.GenerateHTMLReport)
	env.boolean("EMBED_SCREENSHOTS_IN_HTML", &s.EmbedScreenshots)

	env.boolean("VALIDATE_HEADER", &s.ValidateHeader)
	env.boolean("VALIDATE_HEADER_ELEMENTS", &s.ValidateHeaderElements)
	env.boolean("VALIDATE_FOOTER", &s.ValidateFooter)
	env.boolean("VALIDATE_HOME", &s.ValidateHome)
	env.boolean("TAKE_ELEMENT_SCREENSHOTS", &s.TakeElementScreenshots)
	env.boolean("SCREENSHOT_ON_HOVER", &s.ScreenshotOnHover)
	env.integer("MAX_DROPDOWNS", &s.MaxDropdowns)

	env.str("SEARCH_TERM", &s.SearchTerm)
	env.boolean("INCREMENTAL_SEARCH", &s.IncrementalSearch)
	env.millis("TYPING_DELAY", &s.TypingDelay)
	env.lower("LANGUAGE_TARGET", &s.LanguageTarget)
	env.lower("LANGUAGE_RESTORE", &s.LanguageRestore)

	env.boolean("ENABLE_TRACING", &s.EnableTracing)
	env.boolean("TRACE_SCREENSHOTS", &s.TraceScreenshots)
	env.boolean("TRACE_SNAPSHOTS", &s.TraceSnapshots)

	env.str("SELECTORS_FILE", &s.SelectorsFile)

	return env.err
}

// Validate checks enumerations and ranges.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.TargetURL) == "" {
		return fmt.Errorf("TARGET_URL must not be empty")
	}
	if !oneOf(s.BrowserType, browserTypes) {
		return fmt.Errorf("invalid BROWSER_TYPE %q: expected one of %s", s.BrowserType, strings.Join(browserTypes, ", "))
	}
	if !oneOf(s.WaitUntil, waitUntilStates) {
		return fmt.Errorf("invalid WAIT_UNTIL %q: expected one of %s", s.WaitUntil, strings.Join(waitUntilStates, ", "))
	}
	if !oneOf(s.ScreenshotStrategy, screenshotStrategies) {
		return fmt.Errorf("invalid SCREENSHOT_STRATEGY %q: expected one of %s", s.ScreenshotStrategy, strings.Join(screenshotStrategies, ", "))
	}
	if !oneOf(s.ScreenshotFormat, screenshotFormats) {
		return fmt.Errorf("invalid SCREENSHOT_FORMAT %q: expected one of %s", s.ScreenshotFormat, strings.Join(screenshotFormats, ", "))
	}
	if !oneOf(s.LogLevel, logLevels) {
		return fmt.Errorf("invalid LOG_LEVEL %q", s.LogLevel)
	}
	if s.ScreenshotQuality < 0 || s.ScreenshotQuality > 100 {
		return fmt.Errorf("invalid SCREENSHOT_QUALITY %d: must be within 0-100", s.ScreenshotQuality)
	}
	if s.MaxRetries < 1 {
		return fmt.Errorf("invalid MAX_RETRIES %d: must be at least 1", s.MaxRetries)
	}
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", s.ViewportWidth, s.ViewportHeight)
	}
	if s.ProbeTimeout <= 0 || s.PollInterval <= 0 {
		return fmt.Errorf("PROBE_TIMEOUT and POLL_INTERVAL must be positive")
	}
	if s.MaxDropdowns < 0 {
		return fmt.Errorf("invalid MAX_DROPDOWNS %d", s.MaxDropdowns)
	}
	return nil
}

// Viewport returns the viewport as a report-friendly map.
func (s *Settings) Viewport() map[string]int {
	return map[string]int{
		"width":  s.ViewportWidth,
		"height": s.ViewportHeight,
	}
}

// Summary renders the configuration banner printed at startup.
func (s *Settings) Summary() string {
	line := strings.Repeat("=", 80)
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s v%s - Configuration\n%s\n", line, ProjectName, ProjectVersion, line)
	fmt.Fprintf(&b, "Target URL: %s\n", s.TargetURL)
	fmt.Fprintf(&b, "Browser: %s (Headless: %t)\n", s.BrowserType, s.Headless)
	fmt.Fprintf(&b, "Viewport: %dx%d\n", s.ViewportWidth, s.ViewportHeight)
	fmt.Fprintf(&b, "Navigation Timeout: %dms\n", s.NavigationTimeout.Milliseconds())
	fmt.Fprintf(&b, "Element Timeout: %dms\n", s.ElementTimeout.Milliseconds())
	fmt.Fprintf(&b, "Screenshot Strategy: %s\n", s.ScreenshotStrategy)
	fmt.Fprintf(&b, "Reports: HTML=%t, JSON=%t\n", s.GenerateHTMLReport, s.GenerateJSONReport)
	fmt.Fprintf(&b, "Tracing: %t\n", s.EnableTracing)
	b.WriteString(line)
	return b.String()
}

// envReader collects the first parse error so applyEnv stays linear.
type envReader struct {
	lookup lookupFunc
	err    error
}

func (e *envReader) value(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.value(key); ok {
		*dst = v
	}
}

func (e *envReader) lower(key string, dst *string) {
	if v, ok := e.value(key); ok {
		*dst = strings.ToLower(v)
	}
}

func (e *envReader) boolean(key string, dst *bool) {
	v, ok := e.value(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = b
}

func (e *envReader) integer(key string, dst *int) {
	v, ok := e.value(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = n
}

func (e *envReader) millis(key string, dst *time.Duration) {
	v, ok := e.value(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = time.Duration(n) * time.Millisecond
}

func (e *envReader) seconds(key string, dst *time.Duration) {
	v, ok := e.value(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.err = fmt.Errorf("invalid %s: %w", key, err)
		return
	}
	*dst = time.Duration(f * float64(time.Second))
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
