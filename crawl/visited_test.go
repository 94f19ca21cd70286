package crawl_test

import (
	"testing"

	"github.com/fwojciec/storecrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestVisitedSet(t *testing.T) {
	t.Parallel()

	v := crawl.NewVisitedSet(100, 0.01)

	assert.False(t, v.Seen("https://shop.example.com/collections/all"))

	v.Add("https://shop.example.com/collections/all")

	assert.True(t, v.Seen("https://shop.example.com/collections/all"))
	assert.False(t, v.Seen("https://shop.example.com/collections/all/page/2/"))
}
