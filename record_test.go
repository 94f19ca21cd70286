package storecrawl_test

import (
	"testing"

	"github.com/fwojciec/storecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRecord(t *testing.T) {
	t.Parallel()

	rec := storecrawl.NewProductRecord("https://shop.example.com/products/widget")

	assert.Equal(t, "https://shop.example.com/products/widget", rec.SourceURL)
	assert.Equal(t, storecrawl.DefaultText, rec.Name)
	assert.Equal(t, storecrawl.DefaultPrice, rec.Price)
	assert.Equal(t, storecrawl.DefaultText, rec.Description)
	assert.Equal(t, storecrawl.DefaultRating, rec.Rating)
	assert.Equal(t, storecrawl.DefaultText, rec.Category)
	assert.True(t, rec.Availability)
	assert.Equal(t, storecrawl.DefaultText, rec.ImageURL)
}

func TestProductRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		rec := storecrawl.NewProductRecord("https://shop.example.com/products/widget")
		require.NoError(t, rec.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()
		rec := storecrawl.NewProductRecord("")
		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, storecrawl.EINVALID, storecrawl.ErrorCode(err))
	})

	t.Run("negative price", func(t *testing.T) {
		t.Parallel()
		rec := storecrawl.NewProductRecord("https://shop.example.com/products/widget")
		rec.Price = -1
		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, storecrawl.EINVALID, storecrawl.ErrorCode(err))
	})
}
