package entities

// HeaderRecord holds the header validation results. Every field is present in
// the report even when the header itself was never found.
type HeaderRecord struct {
	HeaderExists              bool             `json:"header_exists"`
	LogoExists                bool             `json:"logo_exists"`
	LogoClickable             bool             `json:"logo_clickable"`
	LoginButtonExists         bool             `json:"login_button_exists"`
	LoginButtonClickable      bool             `json:"login_button_clickable"`
	LanguageSwitcherExists    bool             `json:"language_switcher_exists"`
	LanguageSwitcherClickable bool             `json:"language_switcher_clickable"`
	CartExists                bool             `json:"cart_exists"`
	Dropdowns                 []DropdownResult `json:"dropdowns"`
	DropdownsCount            int              `json:"dropdowns_count"`
	WorkingDropdowns          int              `json:"working_dropdowns"`
	NavItemsCount             int              `json:"nav_items_count"`
	Screenshots               []string         `json:"screenshots"`
}

// DropdownResult describes one hovered navigation dropdown.
type DropdownResult struct {
	Index      int    `json:"index"`
	Label      string `json:"label"`
	Hovered    bool   `json:"hovered"`
	OpensMenu  bool   `json:"opens_menu"`
	Screenshot string `json:"screenshot,omitempty"`
}

// FooterRecord holds the footer validation results.
type FooterRecord struct {
	FooterExists     bool     `json:"footer_exists"`
	SocialLinksCount int      `json:"social_links_count"`
	FooterLinksCount int      `json:"footer_links_count"`
	NewsletterExists bool     `json:"newsletter_exists"`
	CopyrightExists  bool     `json:"copyright_exists"`
	Screenshots      []string `json:"screenshots"`
}

// HomeRecord holds the home page (banner and product grid) results.
type HomeRecord struct {
	MainContentExists      bool     `json:"main_content_exists"`
	BannerFound            bool     `json:"banner_found"`
	FeaturedProductsExists bool     `json:"featured_products_exists"`
	ProductItemsCount      int      `json:"product_items_count"`
	ProductNamesCount      int      `json:"product_names_count"`
	ProductPricesCount     int      `json:"product_prices_count"`
	AddToCartCount         int      `json:"add_to_cart_count"`
	Screenshots            []string `json:"screenshots"`
}

// SearchRecord holds the search verification results.
type SearchRecord struct {
	Term               string `json:"term"`
	Submitted          bool   `json:"submitted"`
	IncrementalEnabled bool   `json:"incremental_enabled"`
	Incremental        bool   `json:"incremental"`
	Screenshot         string `json:"screenshot,omitempty"`
}

// NewHeaderRecord - returns a header record with all fields defaulted
func NewHeaderRecord() *HeaderRecord {
	return &HeaderRecord{
		Dropdowns:   []DropdownResult{},
		Screenshots: []string{},
	}
}

// NewFooterRecord - returns a footer record with all fields defaulted
func NewFooterRecord() *FooterRecord {
	return &FooterRecord{Screenshots: []string{}}
}

// NewHomeRecord - returns a home record with all fields defaulted
func NewHomeRecord() *HomeRecord {
	return &HomeRecord{Screenshots: []string{}}
}
