package flows

import (
	"context"

	"web_validator/domain/entities"
	"web_validator/infrastructure/locators"
)

type HomeFlow struct {
	env             Env
	sel             locators.Home
	takeScreenshots bool
}

// NewHomeFlow - creates the home page (banner and products) flow
func NewHomeFlow(env Env, sel locators.Home, takeScreenshots bool) *HomeFlow {
	return &HomeFlow{env: env, sel: sel, takeScreenshots: takeScreenshots}
}

// Run - checks the main content, banner and product grid and registers the
// record under banner_details
func (f *HomeFlow) Run(ctx context.Context) *entities.HomeRecord {
	f.env.section("Banner Validation")
	record := entities.NewHomeRecord()
	defer f.env.Report.Add(KeyHome, record)

	if _, err := f.env.UI.Resolve(ctx, f.sel.MainContent, nil); err == nil {
		record.MainContentExists = true
	}

	banner, err := f.env.UI.Resolve(ctx, f.sel.HeroSection, nil)
	if err == nil {
		record.BannerFound = true
		f.env.Logger.Info("Banner container found.")
		if f.takeScreenshots {
			if _, err := f.env.UI.ElementScreenshot(ctx, banner, "banner"); err == nil {
				record.Screenshots = append(record.Screenshots, "banner")
			}
		}
	} else {
		f.env.Logger.Error("Banner validation failed as container was not found.")
	}

	grid, err := f.env.UI.Resolve(ctx, f.sel.FeaturedProducts, nil)
	if err == nil {
		record.FeaturedProductsExists = true
		record.ProductItemsCount = len(f.env.UI.ResolveAll(ctx, f.sel.ProductItem, grid))
		record.ProductNamesCount = len(f.env.UI.ResolveAll(ctx, f.sel.ProductName, grid))
		record.ProductPricesCount = len(f.env.UI.ResolveAll(ctx, f.sel.ProductPrice, grid))
		record.AddToCartCount = len(f.env.UI.ResolveAll(ctx, f.sel.AddToCart, grid))
	} else {
		f.env.Logger.Warn("Featured products grid not found.")
	}
	return record
}
