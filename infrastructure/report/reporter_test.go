package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/storage"
)

type fixture struct {
	reporter *Reporter
	store    interfaces.ArtifactStore
	dirs     storage.Dirs
	hook     *test.Hook
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	root := t.TempDir()
	dirs := storage.Dirs{
		Screenshots: filepath.Join(root, "screenshots"),
		Reports:     filepath.Join(root, "reports"),
	}
	store, err := storage.NewWorkspace(dirs)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r := New(store, logger, opts)
	r.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	return &fixture{reporter: r, store: store, dirs: dirs, hook: hook}
}

func (fx *fixture) writeShot(t *testing.T, name string) string {
	t.Helper()
	path := fx.store.ScreenshotPath(name, "png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0644))
	return path
}

func seed(r *Reporter) {
	status := 200
	header := entities.NewHeaderRecord()
	header.HeaderExists = true
	header.LogoExists = true
	header.DropdownsCount = 1
	header.Dropdowns = append(header.Dropdowns, entities.DropdownResult{Index: 1, Label: "Phones", Hovered: true, OpensMenu: true})
	header.Screenshots = []string{"logo", "header_full"}

	r.AddMany(map[string]interface{}{
		"timestamp":          "2025-03-14 09:26:53",
		"url":                "https://shop.example.com/",
		"browser":            "chromium",
		"run_id":             "2f1c0a",
		"navigation_success": true,
		"status_code":        &status,
		"header_found":       true,
		"footer_found":       false,
		"exit_code":          0,
	})
	r.Add("header_details", header)
	r.Add("footer_details", entities.NewFooterRecord())
	r.Add("language_switch", map[string]bool{"ar": true, "en": false})
	r.Add("search", &entities.SearchRecord{Term: "iPhone 13", Submitted: true, IncrementalEnabled: true, Incremental: true})
}

func TestAddReplacesAndGet(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.reporter.Add("url", "a")
	fx.reporter.Add("url", "b")

	v, ok := fx.reporter.Get("url")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = fx.reporter.Get("missing")
	assert.False(t, ok)
}

func TestJSONStringifiesUnmarshallableValues(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.reporter.Add("status_code", nil)
	fx.reporter.Add("callback", func() {})
	fx.reporter.Add("channel", make(chan int))

	data, err := fx.reporter.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["status_code"])
	assert.IsType(t, "", decoded["callback"])
	assert.IsType(t, "", decoded["channel"])
}

func TestJSONIsSortedAndIndented(t *testing.T) {
	fx := newFixture(t, Options{})
	fx.reporter.Add("url", "https://shop.example.com/")
	fx.reporter.Add("exit_code", 0)

	data, err := fx.reporter.JSON()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"exit_code\": 0,\n  \"url\": \"https://shop.example.com/\"\n}", string(data))
}

func TestRenderJSONWritesTimestampedFile(t *testing.T) {
	fx := newFixture(t, Options{})
	seed(fx.reporter)

	path, err := fx.reporter.Render(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fx.dirs.Reports, "report_20250314_092653.json"), path)

	var decoded map[string]interface{}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 200.0, decoded["status_code"])
	header := decoded["header_details"].(map[string]interface{})
	assert.Equal(t, true, header["logo_exists"])
	assert.Equal(t, []interface{}{}, decoded["footer_details"].(map[string]interface{})["screenshots"])
}

func TestRenderIsDeterministic(t *testing.T) {
	fx := newFixture(t, Options{EmbedScreenshots: true})
	seed(fx.reporter)
	fx.writeShot(t, "logo")

	for _, format := range []string{FormatJSON, FormatHTML} {
		first, err := fx.reporter.Render(format)
		require.NoError(t, err)
		a, err := os.ReadFile(first)
		require.NoError(t, err)

		second, err := fx.reporter.Render(format)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, a, b, format)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	fx := newFixture(t, Options{})
	_, err := fx.reporter.Render("pdf")
	assert.EqualError(t, err, "unsupported report format: pdf")
}

func TestGenerateHonoursToggles(t *testing.T) {
	fx := newFixture(t, Options{GenerateJSON: true, GenerateHTML: true})
	seed(fx.reporter)

	paths := fx.reporter.Generate()
	assert.Equal(t, []string{
		filepath.Join(fx.dirs.Reports, "report_20250314_092653.json"),
		filepath.Join(fx.dirs.Reports, "report_20250314_092653.html"),
	}, paths)

	fx = newFixture(t, Options{GenerateHTML: true})
	assert.Len(t, fx.reporter.Generate(), 1)
}

func TestGenerateContinuesAfterWriteFailure(t *testing.T) {
	fx := newFixture(t, Options{GenerateJSON: true, GenerateHTML: true})
	seed(fx.reporter)
	jsonPath := filepath.Join(fx.dirs.Reports, "report_20250314_092653.json")
	require.NoError(t, os.MkdirAll(jsonPath, 0755))

	paths := fx.reporter.Generate()

	assert.Equal(t, []string{filepath.Join(fx.dirs.Reports, "report_20250314_092653.html")}, paths)
	var errorsLogged int
	for _, e := range fx.hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errorsLogged++
			assert.Contains(t, e.Message, "Failed to generate json report")
		}
	}
	assert.Equal(t, 1, errorsLogged)
}

func parseHTML(t *testing.T, r *Reporter, reportPath string) *goquery.Document {
	t.Helper()
	html, err := r.HTML(reportPath)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestHTMLOverview(t *testing.T) {
	fx := newFixture(t, Options{Generator: "Playwright Website Validator v2.0.0"})
	seed(fx.reporter)

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	assert.Equal(t, "Website Validation Report - 2025-03-14 09:26:53", doc.Find("title").Text())
	assert.Equal(t, "https://shop.example.com/", doc.Find("#target-url").Text())
	assert.Equal(t, "200", doc.Find("#http-status").Text())
	assert.True(t, doc.Find("#http-status").HasClass("status-success"))
	assert.Equal(t, "Success", doc.Find("#navigation").Text())
	assert.Equal(t, "Yes", doc.Find("#header-present").Text())
	assert.Equal(t, "No", doc.Find("#footer-present").Text())
	assert.Equal(t, "0", doc.Find("#exit-code").Text())
	assert.Contains(t, doc.Find(".banner").Text(), "Playwright Website Validator v2.0.0")

	assert.Equal(t, 1, doc.Find("#header-details").Length())
	assert.Equal(t, 1, doc.Find("#footer-details").Length())
	assert.Equal(t, 0, doc.Find("#home-details").Length())
	assert.Equal(t, 1, doc.Find("#dropdowns tbody tr").Length())

	langs := doc.Find("tr.language")
	require.Equal(t, 2, langs.Length())
	assert.Contains(t, langs.First().Text(), "Switch to AR")
	assert.Equal(t, 2, doc.Find("tr.search").Length())
}

func TestHTMLDefaultsForEmptyBag(t *testing.T) {
	fx := newFixture(t, Options{})

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	assert.Equal(t, "N/A", doc.Find("#http-status").Text())
	assert.Equal(t, "99", doc.Find("#exit-code").Text())
	assert.Equal(t, "Failed", doc.Find("#navigation").Text())
	assert.Equal(t, 0, doc.Find("#element-screenshots").Length())
	assert.Equal(t, 0, doc.Find("#page-screenshot").Length())
}

func TestHTMLEmbedsScreenshotsAndSkipsMissing(t *testing.T) {
	fx := newFixture(t, Options{EmbedScreenshots: true})
	seed(fx.reporter)
	fx.writeShot(t, "logo")
	fx.reporter.Add("screenshot_path", fx.writeShot(t, "final_page_state"))

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	gallery := doc.Find("#element-screenshots img")
	require.Equal(t, 1, gallery.Length())
	src, _ := gallery.Attr("src")
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"))
	assert.Equal(t, "Logo", doc.Find("#element-screenshots h4").Text())

	pageSrc, _ := doc.Find("#page-screenshot img").Attr("src")
	assert.True(t, strings.HasPrefix(pageSrc, "data:image/png;base64,"))
}

func TestHTMLLinksScreenshotsRelativeToReport(t *testing.T) {
	fx := newFixture(t, Options{})
	seed(fx.reporter)
	fx.writeShot(t, "header_full")

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	src, _ := doc.Find("#element-screenshots img").Attr("src")
	assert.Equal(t, "../screenshots/header_full.png", src)
}

func TestHTMLLinksTraceArchive(t *testing.T) {
	fx := newFixture(t, Options{})
	seed(fx.reporter)
	fx.reporter.Add("trace_path", filepath.Join(filepath.Dir(fx.dirs.Reports), "traces", "trace_20250314_092653.zip"))

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	link := doc.Find("#trace a")
	require.Equal(t, 1, link.Length())
	href, _ := link.Attr("href")
	assert.Equal(t, "../traces/trace_20250314_092653.zip", href)
	assert.Equal(t, "trace_20250314_092653.zip", link.Text())
}

func TestHTMLOmitsTraceWithoutTracing(t *testing.T) {
	fx := newFixture(t, Options{})
	seed(fx.reporter)

	doc := parseHTML(t, fx.reporter, filepath.Join(fx.dirs.Reports, "report.html"))

	assert.Equal(t, 0, doc.Find("#trace").Length())
}
