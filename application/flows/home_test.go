package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"web_validator/domain/entities"
	"web_validator/infrastructure/browser/browsertest"
)

func TestHomeValidation(t *testing.T) {
	grid := browsertest.NewElement("grid").
		Add(".product-item", browsertest.NewElement("p1"), browsertest.NewElement("p2")).
		Add(".product-item-link", browsertest.NewElement("n1"), browsertest.NewElement("n2")).
		Add(".price", browsertest.NewElement("price1"), browsertest.NewElement("price2")).
		Add(".action.tocart", browsertest.NewElement("cart1"))
	page := browsertest.NewPage().
		Add("main", browsertest.NewElement("main")).
		Add(".banner", browsertest.NewElement("banner")).
		Add(".products-grid", grid).
		Add(".price", browsertest.NewElement("sidebar price"))
	fx := newFixture(t, page)

	record := NewHomeFlow(fx.env, fx.catalog.Home, true).Run(context.Background())

	assert.True(t, record.MainContentExists)
	assert.True(t, record.BannerFound)
	assert.True(t, record.FeaturedProductsExists)
	assert.Equal(t, 2, record.ProductItemsCount)
	assert.Equal(t, 2, record.ProductNamesCount)
	assert.Equal(t, 2, record.ProductPricesCount)
	assert.Equal(t, 1, record.AddToCartCount)
	assert.Equal(t, []string{"banner"}, record.Screenshots)
	assert.Same(t, record, fx.sink[KeyHome])
}

func TestHomeWithoutBanner(t *testing.T) {
	fx := newFixture(t, browsertest.NewPage())

	record := NewHomeFlow(fx.env, fx.catalog.Home, true).Run(context.Background())

	assert.Equal(t, entities.NewHomeRecord(), record)
	assert.Same(t, record, fx.sink[KeyHome])
}
