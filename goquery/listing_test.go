package goquery_test

import (
	"testing"

	"github.com/fwojciec/storecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
	<div class="col-sm-6 col-md-4 col-lg-4 col-xl-4">
		<a href="/products/linen-shirt">Linen Shirt</a>
	</div>
	<div class="col-sm-6 col-md-4 col-lg-4 col-xl-4">
		<a href="https://shop.example.com/products/wool-socks">Wool Socks</a>
	</div>
	<div class="col-sm-6 col-md-4 col-lg-4 col-xl-4">
		<a href="/products/summer-collection/">Summer Collection</a>
	</div>
	<div class="col-sm-6 col-md-4 col-lg-4 col-xl-4">
		<span>no link here</span>
	</div>
	<nav class="woocommerce-pagination">
		<a class="next page-numbers" href="/collections/all/page/2/">Next</a>
	</nav>
</body></html>`

func TestListingParser_ParseListing(t *testing.T) {
	t.Parallel()

	t.Run("collects detail links and counts all cards", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewListingParser()
		page, err := p.ParseListing(listingPage, "https://shop.example.com/collections/all")

		require.NoError(t, err)
		assert.Equal(t, 4, page.CardCount)
		assert.Equal(t, []string{
			"https://shop.example.com/products/linen-shirt",
			"https://shop.example.com/products/wool-socks",
		}, page.ProductURLs)
	})

	t.Run("empty page has zero cards", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewListingParser()
		page, err := p.ParseListing("<html><body></body></html>", "https://shop.example.com")

		require.NoError(t, err)
		assert.Equal(t, 0, page.CardCount)
		assert.Empty(t, page.ProductURLs)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewListingParser()
		_, err := p.ParseListing(listingPage, "://bad")

		require.Error(t, err)
	})
}

func TestListingParser_NextPageURL(t *testing.T) {
	t.Parallel()

	t.Run("next link in pagination nav", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewListingParser()
		next, ok := p.NextPageURL(listingPage, "https://shop.example.com/collections/all")

		require.True(t, ok)
		assert.Equal(t, "https://shop.example.com/collections/all/page/2/", next)
	})

	t.Run("fallback pagination wrapper", func(t *testing.T) {
		t.Parallel()

		html := `
			<div class="pagination-bar__wrapper">
				<a class="next" href="/collections/all/page/3/">Next</a>
			</div>`

		p := goquery.NewListingParser()
		next, ok := p.NextPageURL(html, "https://shop.example.com/collections/all/page/2/")

		require.True(t, ok)
		assert.Equal(t, "https://shop.example.com/collections/all/page/3/", next)
	})

	t.Run("no pagination region", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewListingParser()
		_, ok := p.NextPageURL("<html><body></body></html>", "https://shop.example.com")

		assert.False(t, ok)
	})

	t.Run("pagination region without next link", func(t *testing.T) {
		t.Parallel()

		html := `<nav class="woocommerce-pagination"><span class="current">2</span></nav>`

		p := goquery.NewListingParser()
		_, ok := p.NextPageURL(html, "https://shop.example.com")

		assert.False(t, ok)
	})
}

func TestIsDetailURL(t *testing.T) {
	t.Parallel()

	assert.True(t, goquery.IsDetailURL("https://shop.example.com/products/linen-shirt"))
	assert.False(t, goquery.IsDetailURL("https://shop.example.com/products/summer-collection/"))
	assert.False(t, goquery.IsDetailURL("https://shop.example.com/collections/all"))
}
