package mock

import "github.com/fwojciec/storecrawl"

var _ storecrawl.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of storecrawl.ListingParser.
type ListingParser struct {
	ParseListingFn func(html, baseURL string) (*storecrawl.ListingPage, error)
	NextPageURLFn  func(html, currentURL string) (string, bool)
}

func (p *ListingParser) ParseListing(html, baseURL string) (*storecrawl.ListingPage, error) {
	return p.ParseListingFn(html, baseURL)
}

func (p *ListingParser) NextPageURL(html, currentURL string) (string, bool) {
	return p.NextPageURLFn(html, currentURL)
}
