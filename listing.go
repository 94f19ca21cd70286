package storecrawl

// ListingPage holds what the pagination controller needs from one listing
// page: the detail-page links in card order, and the raw card count.
// CardCount can exceed len(ProductURLs) when cards link to collections
// rather than individual products; a page with zero cards signals
// end-of-catalog.
type ListingPage struct {
	ProductURLs []string
	CardCount   int
}

// ListingParser parses server-rendered listing pages.
type ListingParser interface {
	// ParseListing selects the product cards from a listing page and
	// resolves each card's product-detail URL against baseURL. Collection
	// links (trailing slash) are excluded from ProductURLs but still
	// counted in CardCount.
	ParseListing(html string, baseURL string) (*ListingPage, error)

	// NextPageURL resolves the "next page" link, trying the known
	// pagination region selectors in order. The bool result is false when
	// no pagination region or next link exists.
	NextPageURL(html string, currentURL string) (string, bool)
}
