package flows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"web_validator/infrastructure/locators"
)

// LanguageOptions configures the language switch checks
type LanguageOptions struct {
	// Timeout bounds the wait for the html lang attribute after each switch
	Timeout time.Duration

	// ReadTimeout bounds a single read of the lang attribute
	ReadTimeout time.Duration
}

type LanguageFlow struct {
	env  Env
	sel  locators.Header
	opts LanguageOptions
}

// NewLanguageFlow - creates the language switch flow
func NewLanguageFlow(env Env, sel locators.Header, opts LanguageOptions) *LanguageFlow {
	if opts.ReadTimeout <= 0 || opts.ReadTimeout > opts.Timeout {
		opts.ReadTimeout = opts.Timeout
	}
	return &LanguageFlow{env: env, sel: sel, opts: opts}
}

// Run - switches to target and, when that works, back to restore. The
// result per language is registered under language_switch.
func (f *LanguageFlow) Run(ctx context.Context, target, restore string) map[string]bool {
	f.env.section("Language Switch Test")
	results := make(map[string]bool)
	defer f.env.Report.Add(KeyLanguage, results)

	results[target] = f.SwitchAndVerify(ctx, target)
	if results[target] && restore != "" && restore != target {
		results[restore] = f.SwitchAndVerify(ctx, restore)
	}
	return results
}

// SwitchAndVerify - clicks the language switcher and checks that the
// document language becomes lang
func (f *LanguageFlow) SwitchAndVerify(ctx context.Context, lang string) bool {
	f.env.Logger.Infof("--- Switching language to '%s' ---", strings.ToUpper(lang))

	switcher, err := f.env.UI.Resolve(ctx, f.sel.LanguageSwitcher, nil)
	if err != nil {
		f.env.Logger.Error("Language switcher not found.")
		return false
	}
	if err := f.env.UI.Click(ctx, switcher, "Language switcher"); err != nil {
		f.screenshot(ctx, lang, false)
		return false
	}
	f.env.UI.WaitForLoad(ctx)

	var actual string
	html := f.env.UI.Page().First("html")
	ok := f.env.UI.Poll(ctx, f.opts.Timeout, func() bool {
		value, err := html.Attribute("lang", f.opts.ReadTimeout)
		if err != nil {
			return false
		}
		actual = value
		return strings.Contains(strings.ToLower(value), strings.ToLower(lang))
	})

	if ok {
		f.env.Logger.Infof("UI updated to %s (html lang='%s')", strings.ToUpper(lang), actual)
	} else {
		f.env.Logger.Errorf("Verification failed. Expected lang='%s', but found '%s'", lang, actual)
	}
	f.screenshot(ctx, lang, ok)
	return ok
}

func (f *LanguageFlow) screenshot(ctx context.Context, lang string, ok bool) {
	name := fmt.Sprintf("language_switch_%s", lang)
	if !ok {
		name += "_failed"
	}
	f.env.UI.PageScreenshot(ctx, name)
}
