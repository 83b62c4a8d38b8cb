package flows

import (
	"context"
	"strings"
	"time"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/locators"
)

// SearchOptions configures the search checks
type SearchOptions struct {
	Term        string
	Incremental bool

	// ResultsTimeout bounds the wait for results after submitting
	ResultsTimeout time.Duration

	// ProbeTimeout bounds the results check after each typed character
	ProbeTimeout time.Duration
}

type SearchFlow struct {
	env  Env
	sel  locators.Header
	opts SearchOptions
}

// NewSearchFlow - creates the search flow
func NewSearchFlow(env Env, sel locators.Header, opts SearchOptions) *SearchFlow {
	return &SearchFlow{env: env, sel: sel, opts: opts}
}

// Run - runs the incremental check when enabled, then submits the term.
// The record is registered under search.
func (f *SearchFlow) Run(ctx context.Context) *entities.SearchRecord {
	f.env.section("Search Test")
	record := &entities.SearchRecord{Term: f.opts.Term}
	defer f.env.Report.Add(KeySearch, record)

	if f.opts.Incremental {
		record.IncrementalEnabled = true
		record.Incremental = f.Incremental(ctx)
	}

	record.Submitted = f.Submit(ctx)

	name := "search_results"
	if record.Submitted {
		f.env.Logger.Infof("Search for '%s' completed successfully", f.opts.Term)
	} else {
		f.env.Logger.Errorf("Search for '%s' failed", f.opts.Term)
		name = "search_failed"
	}
	if _, err := f.env.UI.PageScreenshot(ctx, name); err == nil {
		record.Screenshot = name
	}
	return record
}

// Submit - types the whole term, presses Enter and waits for results. A
// navigation to a search results page also counts.
func (f *SearchFlow) Submit(ctx context.Context) bool {
	f.env.Logger.Infof("--- Performing search for '%s' ---", f.opts.Term)

	box, ok := f.searchBox(ctx)
	if !ok {
		return false
	}
	f.env.UI.Click(ctx, box, "Search box")
	if err := f.env.UI.Fill(ctx, box, f.opts.Term, "Search box"); err != nil {
		return false
	}
	if err := f.env.UI.Press(ctx, box, "Enter", "Search box"); err != nil {
		return false
	}

	if _, err := f.env.UI.WaitForAny(ctx, f.sel.SearchResults, f.opts.ResultsTimeout); err == nil {
		f.env.Logger.Info("Search results appeared")
		return true
	}

	url := f.env.UI.CurrentURL()
	if strings.Contains(url, "catalogsearch") || strings.Contains(url, "search") {
		f.env.Logger.Infof("Navigated to search results page: %s", url)
		return true
	}

	f.env.Logger.Error("Search results did not appear and no search page was opened")
	return false
}

// Incremental - types the term one character at a time and reports whether
// results appear before the term is complete. Typing stops at the first
// character that brings up results.
func (f *SearchFlow) Incremental(ctx context.Context) bool {
	f.env.Logger.Infof("--- Typing '%s' and checking for dynamic results ---", f.opts.Term)

	box, ok := f.searchBox(ctx)
	if !ok {
		return false
	}
	f.env.UI.Click(ctx, box, "Search box")
	if err := f.env.UI.Fill(ctx, box, "", "Search box"); err != nil {
		return false
	}

	typed := ""
	for _, r := range f.opts.Term {
		if ctx.Err() != nil {
			return false
		}
		if err := f.env.UI.TypeSequentially(ctx, box, string(r), "Search box"); err != nil {
			return false
		}
		typed += string(r)

		if _, found := f.env.UI.Probe(f.sel.SearchResults, nil, f.opts.ProbeTimeout); found {
			f.env.Logger.Infof("Dynamic results appeared after typing: '%s'", typed)
			return true
		}
	}

	f.env.Logger.Info("No dynamic results appeared during typing")
	return false
}

// searchBox resolves the search box, opening it through the search icon
// when it is hidden
func (f *SearchFlow) searchBox(ctx context.Context) (interfaces.Element, bool) {
	box, err := f.env.UI.Resolve(ctx, f.sel.SearchBox, nil)
	if err == nil {
		return box, true
	}

	icon, err := f.env.UI.Resolve(ctx, f.sel.SearchIcon, nil)
	if err != nil {
		f.env.Logger.Error("Search box not found.")
		return nil, false
	}
	if err := f.env.UI.Click(ctx, icon, "Search icon"); err != nil {
		return nil, false
	}

	box, err = f.env.UI.WaitForAny(ctx, f.sel.SearchBox, f.opts.ProbeTimeout)
	if err != nil {
		f.env.Logger.Error("Search box not found after opening the search icon.")
		return nil, false
	}
	return box, true
}
