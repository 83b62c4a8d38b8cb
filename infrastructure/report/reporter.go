// Package report collects the results of a run in a key/value bag and
// renders them as JSON and HTML files.
package report

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"web_validator/domain/interfaces"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// Options selects the rendered formats and how screenshots are referenced
type Options struct {
	GenerateJSON     bool
	GenerateHTML     bool
	EmbedScreenshots bool
	ScreenshotFormat string

	// Generator is the "<name> v<version>" line printed in the HTML report
	Generator string
}

// Reporter is the report bag of one run. Keys are unique; a later Add
// replaces the earlier value.
type Reporter struct {
	mu   sync.Mutex
	data map[string]interface{}

	store  interfaces.ArtifactStore
	logger *logrus.Logger
	opts   Options
	now    func() time.Time
}

// New - creates an empty report bag writing through store
func New(store interfaces.ArtifactStore, logger *logrus.Logger, opts Options) *Reporter {
	if opts.ScreenshotFormat == "" {
		opts.ScreenshotFormat = "png"
	}
	return &Reporter{
		data:   make(map[string]interface{}),
		store:  store,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}
}

func (r *Reporter) Add(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
}

func (r *Reporter) AddMany(values map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.data[k] = v
	}
}

func (r *Reporter) Get(key string) (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	return v, ok
}

// Snapshot - returns the bag as plain JSON values. Values that cannot be
// marshalled are replaced by their fmt.Sprint form.
func (r *Reporter) Snapshot() map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]interface{}, len(r.data))
	for k, v := range r.data {
		out[k] = plain(v)
	}
	return out
}

func plain(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Sprint(v)
	}
	return out
}

// JSON - renders the bag as indented JSON with sorted keys
func (r *Reporter) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Render - writes report_<timestamp>.<format> and returns its path
func (r *Reporter) Render(format string) (string, error) {
	return r.render(format, r.stamp())
}

// Generate - renders every enabled format with one shared timestamp.
// Failures are logged and do not stop the other format.
func (r *Reporter) Generate() []string {
	stamp := r.stamp()
	var formats []string
	if r.opts.GenerateJSON {
		formats = append(formats, FormatJSON)
	}
	if r.opts.GenerateHTML {
		formats = append(formats, FormatHTML)
	}

	var paths []string
	for _, format := range formats {
		path, err := r.render(format, stamp)
		if err != nil {
			r.logger.Errorf("Failed to generate %s report: %v", format, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func (r *Reporter) stamp() string {
	return r.now().Format("20060102_150405")
}

func (r *Reporter) render(format, stamp string) (string, error) {
	path := r.store.ReportPath(fmt.Sprintf("report_%s.%s", stamp, format))

	var (
		content []byte
		err     error
	)
	switch format {
	case FormatJSON:
		content, err = r.JSON()
	case FormatHTML:
		content, err = r.HTML(path)
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if err := r.store.WriteFile(path, content); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", format, err)
	}
	r.logger.Infof("%s report saved: %s", formatLabel(format), path)
	return path, nil
}

func formatLabel(format string) string {
	if format == FormatHTML {
		return "HTML"
	}
	return "JSON"
}
