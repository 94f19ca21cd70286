package mock

import "github.com/fwojciec/storecrawl"

var _ storecrawl.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of storecrawl.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(html, sourceURL string) *storecrawl.ProductRecord
}

func (e *RecordExtractor) Extract(html, sourceURL string) *storecrawl.ProductRecord {
	return e.ExtractFn(html, sourceURL)
}

var _ storecrawl.CardLister = (*CardLister)(nil)

// CardLister is a mock implementation of storecrawl.CardLister.
type CardLister struct {
	ExtractCardsFn func(html, baseURL string) ([]*storecrawl.ProductRecord, error)
}

func (c *CardLister) ExtractCards(html, baseURL string) ([]*storecrawl.ProductRecord, error) {
	return c.ExtractCardsFn(html, baseURL)
}
