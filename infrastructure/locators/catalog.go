// Package locators holds the selector tables for every page region. Order
// inside a list is priority order.
package locators

import "web_validator/domain/entities"

// Catalog groups the concepts by page region
type Catalog struct {
	Header Header
	Footer Footer
	Home   Home
}

type Header struct {
	Container        entities.Concept
	Logo             entities.Concept
	LoginButton      entities.Concept
	LanguageSwitcher entities.Concept
	Dropdowns        entities.Concept
	NavItems         entities.Concept
	SearchBox        entities.Concept
	SearchIcon       entities.Concept
	SearchResults    entities.Concept
	CartButton       entities.Concept
}

type Footer struct {
	Container       entities.Concept
	SocialLinks     entities.Concept
	FooterLinks     entities.Concept
	Copyright       entities.Concept
	NewsletterInput entities.Concept
}

type Home struct {
	MainContent      entities.Concept
	HeroSection      entities.Concept
	FeaturedProducts entities.Concept
	ProductItem      entities.Concept
	ProductName      entities.Concept
	ProductPrice     entities.Concept
	AddToCart        entities.Concept
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Header: Header{
			Container: entities.NewConcept("Header container",
				`header`,
				`[role="banner"]`,
				`.header`,
				`#header`,
				`nav`,
				`.navbar`,
				`.site-header`,
				`.page-header`,
				`.top-bar`,
			),
			Logo: entities.NewConcept("Logo",
				`img[alt*="logo" i]`,
				`img[class*="logo" i]`,
				`img[id*="logo" i]`,
				`a[class*="logo" i] img`,
				`.logo img`,
				`#logo img`,
				`[data-testid*="logo" i]`,
				`svg[class*="logo" i]`,
				`.brand img`,
				`.navbar-brand img`,
			),
			LoginButton: entities.NewConcept("Login button",
				// English text
				`button:has-text("login")`,
				`button:has-text("sign in")`,
				`a:has-text("login")`,
				`a:has-text("sign in")`,
				// Arabic text
				`button:has-text("تسجيل الدخول")`,
				`button:has-text("دخول")`,
				`a:has-text("تسجيل الدخول")`,
				`a:has-text("دخول")`,
				`button[class*="login" i]`,
				`button[id*="login" i]`,
				`a[class*="login" i]`,
				`a[id*="signin" i]`,
				`.login-button`,
				`.signin-button`,
				`#login-btn`,
				`button[data-testid*="login" i]`,
				`a[href*="login"]`,
				`a[href*="signin"]`,
			),
			LanguageSwitcher: entities.NewConcept("Language switcher",
				// Magento store switch
				`#aren`,
				`a[href*="___store=ar"]`,
				`a[href*="___store=en"]`,
				`a[title*="عربي"]`,
				`a[title*="Arabic"]`,
				`a[title*="English"]`,
				`.switcher-language a`,
				`.language-switcher a`,
				`a:has-text("عربي")`,
				`a:has-text("English")`,
				`button:has-text("عربي")`,
				`button:has-text("English")`,
				`button:has-text("EN")`,
				`button:has-text("AR")`,
				`a:has-text("EN")`,
				`a:has-text("AR")`,
				`button[class*="language" i]`,
				`button[class*="lang" i]`,
				`button[id*="language" i]`,
				`select[class*="language" i]`,
				`.language-switcher`,
				`.lang-switcher`,
				`#language-selector`,
				`button[data-testid*="language" i]`,
				`[aria-label*="language" i]`,
				`button:has(svg[class*="globe" i])`,
				`button:has(.fa-globe)`,
				`button:has([class*="translate" i])`,
			),
			Dropdowns: entities.NewConcept("Dropdown menu",
				`nav li.level0.parent`,
				`nav li.level0 > a`,
				`.navigation li.parent > a`,
				`nav .level-top`,
				`li.level0.parent`,
				`button[aria-expanded]`,
				`button[aria-haspopup="true"]`,
				`a[aria-haspopup="true"]`,
				`[role="button"][aria-expanded]`,
				`.dropdown-toggle`,
				`button.dropdown`,
				`nav button`,
				`nav [role="button"]`,
				`.nav-item.dropdown`,
				`nav li.dropdown > a`,
				`nav li.parent > a`,
				`button:has(svg[class*="chevron" i])`,
				`button:has(svg[class*="arrow" i])`,
				`a:has(svg[class*="chevron" i])`,
				`a:has(svg[class*="arrow" i])`,
				`button:has(.fa-chevron-down)`,
				`button:has(.fa-caret-down)`,
			),
			NavItems: entities.NewConcept("Navigation item",
				`nav a`,
				`.nav-link`,
				`.menu-item`,
				`[role="menuitem"]`,
				`header a[href]`,
			),
			SearchBox: entities.NewConcept("Search box",
				`#search`,
				`[name="q"]`,
				`[aria-label*="search" i]`,
				`input[type="search"]`,
				`.search-input`,
				`.search-field`,
				`.search-box input`,
			),
			SearchIcon: entities.NewConcept("Search icon",
				`.search_icon .sicon`,
				`.search-icon`,
				`[aria-label*="search" i]`,
				`button[type="submit"]`,
				`.search-button`,
				`.search-submit`,
			),
			SearchResults: entities.NewConcept("Search results container",
				`#search_autocomplete`,
				`.search-autocomplete`,
				`.autocomplete-results`,
				`.search-results`,
				`[role="listbox"]`,
				`.dropdown-menu.search`,
				`[class*="search" i][class*="result" i]`,
				`[id*="search" i][id*="autocomplete" i]`,
				`.autocomplete`,
			),
			CartButton: entities.NewConcept("Cart button",
				`a.action.showcart`,
				`button[aria-label*="cart" i]`,
				`a[href*="cart"]`,
				`.cart-button`,
				`.shopping-cart`,
				`button:has(svg[class*="cart" i])`,
				`[data-testid*="cart" i]`,
			),
		},
		Footer: Footer{
			Container: entities.NewConcept("Footer container",
				`footer`,
				`[role="contentinfo"]`,
				`.footer`,
				`#footer`,
				`.site-footer`,
				`.page-footer`,
				`.bottom-bar`,
			),
			SocialLinks: entities.NewConcept("Social link",
				`a[href*="facebook"]`,
				`a[href*="twitter"]`,
				`a[href*="instagram"]`,
				`a[href*="youtube"]`,
				`a[href*="linkedin"]`,
				`.social-link`,
				`.social-icon`,
				`[class*="social" i] a`,
			),
			FooterLinks: entities.NewConcept("Footer link",
				`footer a`,
				`.footer a`,
				`.footer-links a`,
				`.footer-nav a`,
			),
			Copyright: entities.NewConcept("Copyright",
				`.copyright`,
				`.footer-copyright`,
				`:has-text("©")`,
				`:has-text("Copyright")`,
			),
			NewsletterInput: entities.NewConcept("Newsletter input",
				`#newsletter`,
				`input[name="email"][id*="newsletter" i]`,
				`.newsletter input[type="email"]`,
				`form[class*="newsletter" i] input`,
				`input[type="email"]`,
			),
		},
		Home: Home{
			MainContent: entities.NewConcept("Main content",
				`main`,
				`[role="main"]`,
				`.main`,
				`#maincontent`,
				`.content`,
			),
			HeroSection: entities.NewConcept("Banner container",
				`.hero`,
				`.banner`,
				`.jumbotron`,
				`.hero-banner`,
				`.hero-section`,
				`.slider`,
			),
			FeaturedProducts: entities.NewConcept("Featured products",
				`.products-grid`,
				`.product-grid`,
				`.featured-products`,
				`.product-items`,
			),
			ProductItem: entities.NewConcept("Product item",
				`.product-item`,
				`.item.product`,
				`[data-role="product-item"]`,
			),
			ProductName: entities.NewConcept("Product name",
				`.product-name`,
				`.product-item-link`,
				`.product-title`,
			),
			ProductPrice: entities.NewConcept("Product price",
				`.price`,
				`.product-price`,
				`.regular-price`,
			),
			AddToCart: entities.NewConcept("Add to cart button",
				`button[title*="Add to Cart" i]`,
				`.action.tocart`,
				`.add-to-cart`,
				`.btn-cart`,
			),
		},
	}
}

// concepts maps "<region>.<key>" to the concept fields of the catalog, the
// keys accepted in a selectors file.
func (c *Catalog) concepts() map[string]*entities.Concept {
	return map[string]*entities.Concept{
		"header.container":         &c.Header.Container,
		"header.logo":              &c.Header.Logo,
		"header.login_button":      &c.Header.LoginButton,
		"header.language_switcher": &c.Header.LanguageSwitcher,
		"header.dropdowns":         &c.Header.Dropdowns,
		"header.nav_items":         &c.Header.NavItems,
		"header.search_box":        &c.Header.SearchBox,
		"header.search_icon":       &c.Header.SearchIcon,
		"header.search_results":    &c.Header.SearchResults,
		"header.cart_button":       &c.Header.CartButton,

		"footer.container":        &c.Footer.Container,
		"footer.social_links":     &c.Footer.SocialLinks,
		"footer.footer_links":     &c.Footer.FooterLinks,
		"footer.copyright":        &c.Footer.Copyright,
		"footer.newsletter_input": &c.Footer.NewsletterInput,

		"home.main_content":      &c.Home.MainContent,
		"home.hero_section":      &c.Home.HeroSection,
		"home.featured_products": &c.Home.FeaturedProducts,
		"home.product_item":      &c.Home.ProductItem,
		"home.product_name":      &c.Home.ProductName,
		"home.product_price":     &c.Home.ProductPrice,
		"home.add_to_cart":       &c.Home.AddToCart,
	}
}
