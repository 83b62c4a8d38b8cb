package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"web_validator/domain/entities"
	"web_validator/infrastructure/browser/browsertest"
)

func TestFooterMissingKeepsDefaults(t *testing.T) {
	page := browsertest.NewPage()
	fx := newFixture(t, page)

	record := NewFooterFlow(fx.env, fx.catalog.Footer, true).Run(context.Background())

	assert.Equal(t, entities.NewFooterRecord(), record)
	assert.Same(t, record, fx.sink[KeyFooter])
	assert.Empty(t, page.Screenshots)
}

func TestFooterValidation(t *testing.T) {
	footer := browsertest.NewElement("footer").
		Add(`a[href*="facebook"]`, browsertest.NewElement("fb")).
		Add(`a[href*="instagram"]`, browsertest.NewElement("ig")).
		Add("footer a", browsertest.NewElement("l1"), browsertest.NewElement("l2"), browsertest.NewElement("l3")).
		Add(".copyright", browsertest.NewElement("copyright"))
	page := browsertest.NewPage().Add("footer", footer)
	fx := newFixture(t, page)

	record := NewFooterFlow(fx.env, fx.catalog.Footer, true).Run(context.Background())

	assert.True(t, record.FooterExists)
	assert.Equal(t, 2, record.SocialLinksCount)
	assert.Equal(t, 3, record.FooterLinksCount)
	assert.False(t, record.NewsletterExists)
	assert.True(t, record.CopyrightExists)
	assert.Equal(t, []string{"footer_full"}, record.Screenshots)
	assert.Len(t, footer.Screenshots, 1)
}

func TestFooterNewsletterScopedToFooter(t *testing.T) {
	footer := browsertest.NewElement("footer").Add("#newsletter", browsertest.NewElement("newsletter"))
	page := browsertest.NewPage().
		Add("footer", footer).
		Add("input[type=\"email\"]", browsertest.NewElement("page email"))
	fx := newFixture(t, page)

	record := NewFooterFlow(fx.env, fx.catalog.Footer, false).Run(context.Background())

	assert.True(t, record.NewsletterExists)
	assert.Empty(t, record.Screenshots)
}
