package flows

import (
	"context"

	"web_validator/domain/entities"
	"web_validator/infrastructure/locators"
)

type FooterFlow struct {
	env             Env
	sel             locators.Footer
	takeScreenshots bool
}

// NewFooterFlow - creates the footer validation flow
func NewFooterFlow(env Env, sel locators.Footer, takeScreenshots bool) *FooterFlow {
	return &FooterFlow{env: env, sel: sel, takeScreenshots: takeScreenshots}
}

// Run - validates the footer and registers the record under footer_details
func (f *FooterFlow) Run(ctx context.Context) *entities.FooterRecord {
	f.env.section("Footer Validation")
	record := entities.NewFooterRecord()
	defer f.env.Report.Add(KeyFooter, record)

	footer, err := f.env.UI.Resolve(ctx, f.sel.Container, nil)
	if err != nil {
		f.env.Logger.Error("Footer not found - skipping other checks")
		return record
	}
	record.FooterExists = true

	record.SocialLinksCount = len(f.env.UI.ResolveAll(ctx, f.sel.SocialLinks, footer))
	f.env.Logger.Infof("Found %d social media links.", record.SocialLinksCount)

	record.FooterLinksCount = len(f.env.UI.ResolveAll(ctx, f.sel.FooterLinks, footer))
	f.env.Logger.Infof("Found %d footer links.", record.FooterLinksCount)

	if _, err := f.env.UI.Resolve(ctx, f.sel.NewsletterInput, footer); err == nil {
		record.NewsletterExists = true
		f.env.Logger.Info("Newsletter input form found.")
	} else {
		f.env.Logger.Warn("Newsletter input form not found.")
	}

	if _, err := f.env.UI.Resolve(ctx, f.sel.Copyright, footer); err == nil {
		record.CopyrightExists = true
	}

	if f.takeScreenshots {
		if _, err := f.env.UI.ElementScreenshot(ctx, footer, "footer_full"); err == nil {
			record.Screenshots = append(record.Screenshots, "footer_full")
		}
	}
	return record
}
