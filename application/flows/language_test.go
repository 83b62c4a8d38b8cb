package flows

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_validator/infrastructure/browser/browsertest"
)

func languagePage(switcher *browsertest.Element, html *browsertest.Element) *browsertest.Page {
	return browsertest.NewPage().
		Add("#aren", switcher).
		Add("html", html)
}

func languageOptions(timeout time.Duration) LanguageOptions {
	return LanguageOptions{Timeout: timeout, ReadTimeout: 100 * time.Millisecond}
}

func TestLanguageSwitchAndRestore(t *testing.T) {
	html := browsertest.NewElement("html")
	html.Attrs = map[string]string{"lang": "en-US"}
	switcher := browsertest.NewElement("switcher")
	switcher.OnClick = func() {
		if html.Attrs["lang"] == "ar" {
			html.Attrs["lang"] = "en-US"
		} else {
			html.Attrs["lang"] = "ar"
		}
	}
	page := languagePage(switcher, html)
	fx := newFixture(t, page)

	results := NewLanguageFlow(fx.env, fx.catalog.Header, languageOptions(5*time.Second)).Run(context.Background(), "ar", "en")

	assert.Equal(t, map[string]bool{"ar": true, "en": true}, results)
	assert.Equal(t, results, fx.sink[KeyLanguage])
	assert.Equal(t, 2, switcher.Clicks)
	assert.Equal(t, []string{"load", "load"}, page.LoadStates)
	assert.Equal(t, []string{
		filepath.Join(fx.dir, "language_switch_ar.png"),
		filepath.Join(fx.dir, "language_switch_en.png"),
	}, page.Screenshots)
}

func TestLanguageSwitchFailureSkipsRestore(t *testing.T) {
	html := browsertest.NewElement("html")
	html.Attrs = map[string]string{"lang": "en"}
	switcher := browsertest.NewElement("switcher")
	page := languagePage(switcher, html)
	fx := newFixture(t, page)

	results := NewLanguageFlow(fx.env, fx.catalog.Header, languageOptions(time.Second)).Run(context.Background(), "ar", "en")

	assert.Equal(t, map[string]bool{"ar": false}, results)
	assert.Equal(t, 1, switcher.Clicks)
	require.NotEmpty(t, html.AttributeTimeouts)
	for _, timeout := range html.AttributeTimeouts {
		assert.Equal(t, 100*time.Millisecond, timeout)
	}
	assert.Equal(t, []string{filepath.Join(fx.dir, "language_switch_ar_failed.png")}, page.Screenshots)
}

func TestLanguageSwitchMatchesCaseInsensitively(t *testing.T) {
	html := browsertest.NewElement("html")
	html.Attrs = map[string]string{"lang": "en"}
	switcher := browsertest.NewElement("switcher")
	switcher.OnClick = func() { html.Attrs["lang"] = "AR-KW" }
	fx := newFixture(t, languagePage(switcher, html))

	assert.True(t, NewLanguageFlow(fx.env, fx.catalog.Header, languageOptions(time.Second)).SwitchAndVerify(context.Background(), "ar"))
}

func TestLanguageSwitcherMissing(t *testing.T) {
	page := browsertest.NewPage()
	fx := newFixture(t, page)

	results := NewLanguageFlow(fx.env, fx.catalog.Header, languageOptions(time.Second)).Run(context.Background(), "ar", "en")

	assert.Equal(t, map[string]bool{"ar": false}, results)
	assert.Empty(t, page.Screenshots)
}

func TestLanguageReadTimeoutNeverExceedsTimeout(t *testing.T) {
	html := browsertest.NewElement("html")
	html.Attrs = map[string]string{"lang": "en"}
	switcher := browsertest.NewElement("switcher")
	switcher.OnClick = func() { html.Attrs["lang"] = "ar" }
	fx := newFixture(t, languagePage(switcher, html))

	flow := NewLanguageFlow(fx.env, fx.catalog.Header, LanguageOptions{Timeout: time.Second})

	assert.True(t, flow.SwitchAndVerify(context.Background(), "ar"))
	assert.Equal(t, []time.Duration{time.Second}, html.AttributeTimeouts)
}
