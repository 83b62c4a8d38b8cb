package flows

import (
	"context"
	"fmt"
	"time"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/locators"
)

const (
	parentTagScript = `el => el.parentElement ? el.parentElement.tagName : ""`

	submenuOpenScript = `el => {
	if (el.getAttribute("aria-expanded") === "true") return true;
	const item = el.closest("li") || el.parentElement || el;
	const menu = item.querySelector("ul, .submenu, .dropdown-menu, [role='menu']");
	if (!menu) return false;
	const style = window.getComputedStyle(menu);
	return style.display !== "none" && style.visibility !== "hidden" && menu.offsetHeight > 0;
}`
)

// HeaderOptions toggles the parts of the header check
type HeaderOptions struct {
	ValidateElements  bool
	TakeScreenshots   bool
	ScreenshotOnHover bool
	MaxDropdowns      int
	HoverTimeout      time.Duration
}

type HeaderFlow struct {
	env  Env
	sel  locators.Header
	opts HeaderOptions
}

// NewHeaderFlow - creates the header validation flow
func NewHeaderFlow(env Env, sel locators.Header, opts HeaderOptions) *HeaderFlow {
	return &HeaderFlow{env: env, sel: sel, opts: opts}
}

// Run - validates the header and registers the record under header_details.
// Without a header container no further lookups are made.
func (f *HeaderFlow) Run(ctx context.Context) *entities.HeaderRecord {
	f.env.section("Header Validation")
	record := entities.NewHeaderRecord()
	defer f.env.Report.Add(KeyHeader, record)

	header, err := f.env.UI.Resolve(ctx, f.sel.Container, nil)
	if err != nil {
		f.env.Logger.Error("Header not found - skipping other checks")
		return record
	}
	record.HeaderExists = true

	if f.opts.ValidateElements {
		f.checkLogo(ctx, record)
		f.checkLoginButton(ctx, record)
		f.checkLanguageSwitcher(ctx, record)
		f.checkCart(ctx, record)
		record.NavItemsCount = len(f.env.UI.ResolveAll(ctx, f.sel.NavItems, header))
		f.checkDropdowns(ctx, header, record)
	}

	if f.opts.TakeScreenshots {
		f.capture(ctx, header, "header_full", record)
	}

	f.env.Logger.Infof("Header validation finished: logo=%t login=%t language=%t dropdowns=%d/%d",
		record.LogoExists, record.LoginButtonExists, record.LanguageSwitcherExists,
		record.WorkingDropdowns, record.DropdownsCount)
	return record
}

func (f *HeaderFlow) checkLogo(ctx context.Context, record *entities.HeaderRecord) {
	logo, err := f.env.UI.Resolve(ctx, f.sel.Logo, nil)
	if err != nil {
		return
	}
	record.LogoExists = true

	tag, err := logo.Evaluate(parentTagScript)
	if err != nil {
		f.env.Logger.Debugf("Could not inspect logo parent: %v", err)
	} else if s, ok := tag.(string); ok && s == "A" {
		record.LogoClickable = true
	}

	if f.opts.TakeScreenshots {
		f.capture(ctx, logo, "logo", record)
	}
}

func (f *HeaderFlow) checkLoginButton(ctx context.Context, record *entities.HeaderRecord) {
	login, err := f.env.UI.Resolve(ctx, f.sel.LoginButton, nil)
	if err != nil {
		return
	}
	record.LoginButtonExists = true
	record.LoginButtonClickable = f.env.UI.IsClickable(ctx, login)

	if f.opts.TakeScreenshots {
		f.capture(ctx, login, "login_button", record)
	}
}

func (f *HeaderFlow) checkLanguageSwitcher(ctx context.Context, record *entities.HeaderRecord) {
	switcher, err := f.env.UI.Resolve(ctx, f.sel.LanguageSwitcher, nil)
	if err != nil {
		return
	}
	record.LanguageSwitcherExists = true
	record.LanguageSwitcherClickable = f.env.UI.IsClickable(ctx, switcher)

	if f.opts.TakeScreenshots {
		f.capture(ctx, switcher, "language_switcher", record)
	}
}

func (f *HeaderFlow) checkCart(ctx context.Context, record *entities.HeaderRecord) {
	if _, err := f.env.UI.Resolve(ctx, f.sel.CartButton, nil); err == nil {
		record.CartExists = true
	}
}

// checkDropdowns hovers each navigation dropdown in the header and polls for
// its submenu to open.
func (f *HeaderFlow) checkDropdowns(ctx context.Context, header interfaces.Element, record *entities.HeaderRecord) {
	dropdowns := f.env.UI.ResolveAll(ctx, f.sel.Dropdowns, header)
	if f.opts.MaxDropdowns > 0 && len(dropdowns) > f.opts.MaxDropdowns {
		dropdowns = dropdowns[:f.opts.MaxDropdowns]
	}
	record.DropdownsCount = len(dropdowns)

	for i, dropdown := range dropdowns {
		if ctx.Err() != nil {
			return
		}
		result := entities.DropdownResult{Index: i + 1}
		if text, err := dropdown.InnerText(f.opts.HoverTimeout); err == nil {
			result.Label = truncate(text, 40)
		}

		name := fmt.Sprintf("Dropdown %d", i+1)
		if err := f.env.UI.Hover(ctx, dropdown, name); err == nil {
			result.Hovered = true
			result.OpensMenu = f.env.UI.Poll(ctx, f.opts.HoverTimeout, func() bool {
				open, err := dropdown.Evaluate(submenuOpenScript)
				b, ok := open.(bool)
				return err == nil && ok && b
			})
		}

		if result.OpensMenu {
			record.WorkingDropdowns++
			f.env.Logger.Infof("Dropdown %d (%s) opens its menu", result.Index, result.Label)
			if f.opts.ScreenshotOnHover {
				shot := fmt.Sprintf("dropdown_%d", result.Index)
				if _, err := f.env.UI.PageScreenshot(ctx, shot); err == nil {
					result.Screenshot = shot
				}
			}
		} else {
			f.env.Logger.Warnf("Dropdown %d (%s) did not open a menu", result.Index, result.Label)
		}
		record.Dropdowns = append(record.Dropdowns, result)
	}
}

func (f *HeaderFlow) capture(ctx context.Context, el interfaces.Element, name string, record *entities.HeaderRecord) {
	if _, err := f.env.UI.ElementScreenshot(ctx, el, name); err == nil {
		record.Screenshots = append(record.Screenshots, name)
	}
}
