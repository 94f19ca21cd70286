package goquery_test

import (
	"testing"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renderedPage = `
<html><body>
	<product-item class="product-collection">
		<h4><a href="/products/linen-shirt">Linen Shirt</a></h4>
		<span class="price--sale" data-js-product-price>$39.00</span>
		<span class="price" data-js-product-price>$49.00</span>
		<p class="product-collection__description">Light and  breezy.</p>
		<div class="product-collection__more-info"><a href="/collections/vendor">Acme Apparel</a></div>
		<p data-js-product-availability><span>●</span><span>In Stock</span></p>
		<img class="rimage__img" data-master="//cdn.example.com/shirt_{width}x.jpg">
	</product-item>
	<product-item class="product-collection">
		<h4><a href="/products/wool-socks">Wool Socks</a></h4>
		<span class="price" data-js-product-price>$9.00</span>
		<p data-js-product-availability><span>●</span><span>Sold Out</span></p>
	</product-item>
	<product-item class="product-collection">
		<h4>No link card</h4>
	</product-item>
</body></html>`

func TestExtractor_ExtractCards(t *testing.T) {
	t.Parallel()

	t.Run("extracts one record per linked card", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		records, err := e.ExtractCards(renderedPage, "https://shop.example.com/collections/all")

		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "https://shop.example.com/products/linen-shirt", first.SourceURL)
		assert.Equal(t, "Linen Shirt", first.Name)
		assert.Equal(t, 39.00, first.Price)
		assert.Equal(t, "Light and breezy.", first.Description)
		assert.Equal(t, "Acme Apparel", first.Category)
		assert.True(t, first.Availability)
		assert.Equal(t, "https://cdn.example.com/shirt_1024x.jpg", first.ImageURL)

		second := records[1]
		assert.Equal(t, "https://shop.example.com/products/wool-socks", second.SourceURL)
		assert.Equal(t, 9.00, second.Price)
		assert.False(t, second.Availability)
		assert.Equal(t, storecrawl.DefaultText, second.Description)
		assert.Equal(t, storecrawl.DefaultText, second.ImageURL)
	})

	t.Run("no cards", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		records, err := e.ExtractCards("<html><body></body></html>", "https://shop.example.com")

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractCards(renderedPage, "://bad")

		require.Error(t, err)
		assert.Equal(t, storecrawl.EINVALID, storecrawl.ErrorCode(err))
	})
}
