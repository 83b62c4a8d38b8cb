package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var reportTemplate = template.Must(template.New("report").Parse(htmlTemplate))

type htmlView struct {
	Title     string
	Generator string

	URL        string
	Timestamp  string
	Browser    string
	RunID      string
	StatusCode string
	StatusOK   bool

	NavigationSuccess bool
	HeaderFound       bool
	FooterFound       bool
	ExitCode          int

	Header    map[string]interface{}
	Footer    map[string]interface{}
	Home      map[string]interface{}
	Dropdowns []map[string]interface{}
	Languages []languageView
	Search    *searchView

	PageTitle      string
	Trace          *traceView
	PageScreenshot *imageView
	Gallery        []imageView
}

type traceView struct {
	Name string
	Href template.URL
}

type languageView struct {
	Lang string
	OK   bool
}

type searchView struct {
	Term           string
	Submitted      bool
	HasIncremental bool
	Incremental    bool
}

type imageView struct {
	Title string
	Src   template.URL
}

// HTML - renders the bag as a single HTML document. reportPath is where the
// document will be written; without embedding, screenshots are linked
// relative to it.
func (r *Reporter) HTML(reportPath string) ([]byte, error) {
	data := r.Snapshot()
	view := r.buildView(data, filepath.Dir(reportPath))

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Reporter) buildView(data map[string]interface{}, reportDir string) htmlView {
	timestamp := orDefault(getString(data, "timestamp"), "N/A")
	view := htmlView{
		Title:             "Website Validation Report - " + timestamp,
		Generator:         r.opts.Generator,
		URL:               orDefault(getString(data, "url"), "N/A"),
		Timestamp:         timestamp,
		Browser:           humanize(getString(data, "browser")),
		RunID:             getString(data, "run_id"),
		StatusCode:        "N/A",
		NavigationSuccess: getBool(data, "navigation_success"),
		HeaderFound:       getBool(data, "header_found"),
		FooterFound:       getBool(data, "footer_found"),
		ExitCode:          99,
		Header:            getMap(data, "header_details"),
		Footer:            getMap(data, "footer_details"),
		Home:              getMap(data, "banner_details"),
		PageTitle:         getString(data, "page_title"),
	}

	if trace := getString(data, "trace_path"); trace != "" {
		view.Trace = &traceView{Name: filepath.Base(trace), Href: relativeLink(reportDir, trace)}
	}

	if status := getInt(data, "status_code"); status != 0 {
		view.StatusCode = strconv.Itoa(status)
		view.StatusOK = status >= 200 && status < 300
	}
	if _, ok := data["exit_code"]; ok {
		view.ExitCode = getInt(data, "exit_code")
	}

	if view.Header != nil {
		if list, ok := view.Header["dropdowns"].([]interface{}); ok {
			for _, item := range list {
				if m, ok := item.(map[string]interface{}); ok {
					view.Dropdowns = append(view.Dropdowns, m)
				}
			}
		}
	}

	if search := getMap(data, "search"); search != nil {
		view.Search = &searchView{
			Term:           getString(search, "term"),
			Submitted:      getBool(search, "submitted"),
			HasIncremental: getBool(search, "incremental_enabled"),
			Incremental:    getBool(search, "incremental"),
		}
	}

	if langs := getMap(data, "language_switch"); langs != nil {
		for _, lang := range sortedKeys(langs) {
			view.Languages = append(view.Languages, languageView{Lang: strings.ToUpper(lang), OK: getBool(langs, lang)})
		}
	}

	if path := getString(data, "screenshot_path"); path != "" {
		if src, ok := r.imageSource(path, reportDir); ok {
			view.PageScreenshot = &imageView{Title: "Page Screenshot", Src: src}
		}
	}

	for _, section := range []map[string]interface{}{view.Header, view.Home, view.Footer} {
		for _, name := range getStrings(section, "screenshots") {
			path := r.store.ScreenshotPath(name, r.opts.ScreenshotFormat)
			if src, ok := r.imageSource(path, reportDir); ok {
				view.Gallery = append(view.Gallery, imageView{Title: humanize(name), Src: src})
			}
		}
	}

	return view
}

// imageSource returns a data URI or a path relative to the report. Missing
// files yield false.
func (r *Reporter) imageSource(path, reportDir string) (template.URL, bool) {
	if r.opts.EmbedScreenshots {
		data, err := os.ReadFile(path)
		if err != nil {
			r.logger.Debugf("Skipping screenshot %s: %v", path, err)
			return "", false
		}
		mimeType := "image/png"
		if ext := strings.ToLower(filepath.Ext(path)); ext == ".jpg" || ext == ".jpeg" {
			mimeType = "image/jpeg"
		}
		return template.URL(fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))), true
	}

	if _, err := os.Stat(path); err != nil {
		r.logger.Debugf("Skipping screenshot %s: %v", path, err)
		return "", false
	}
	return relativeLink(reportDir, path), true
}

func relativeLink(reportDir, path string) template.URL {
	rel, err := filepath.Rel(reportDir, path)
	if err != nil {
		rel = path
	}
	return template.URL(filepath.ToSlash(rel))
}

// getString - extracts string value from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getBool - extracts boolean value from map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// getInt - extracts integer value from map
func getInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		}
	}
	return 0
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func getStrings(m map[string]interface{}, key string) []string {
	list, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// humanize turns "login_button" into "Login Button"
func humanize(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
