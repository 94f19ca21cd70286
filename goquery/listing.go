package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storecrawl"
)

// Structural selectors for the storefront's listing pages. The pagination
// region and next-link selectors come in pairs because the markup drifts
// between the WooCommerce and Shopify renderings of the same theme.
const (
	cardSelector        = "div.col-sm-6.col-md-4.col-lg-4.col-xl-4"
	productLinkSelector = "a[href*='/products/']"

	paginationSelector         = "nav.woocommerce-pagination"
	paginationFallbackSelector = "div.pagination-bar__wrapper"
	nextLinkSelector           = "a.next"
	nextLinkFallbackSelector   = "a.next.page-numbers"
)

// Ensure ListingParser implements storecrawl.ListingParser at compile time.
var _ storecrawl.ListingParser = (*ListingParser)(nil)

// ListingParser parses server-rendered listing pages: product cards, their
// detail-page links, and the next-page link.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ParseListing selects the product cards and resolves each card's first
// product link against baseURL. Links that don't have the detail-page shape
// (a /products/ path segment without a trailing slash) are excluded: a
// trailing slash indicates a collection link, not a single item.
func (p *ListingParser) ParseListing(html string, baseURL string) (*storecrawl.ListingPage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &storecrawl.ListingPage{}
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		page.CardCount++

		href, ok := card.Find(productLinkSelector).First().Attr("href")
		if !ok || href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !IsDetailURL(resolved) {
			return
		}
		page.ProductURLs = append(page.ProductURLs, resolved)
	})

	return page, nil
}

// NextPageURL searches for the pagination region using the two known
// structural selectors, then for a next link by the two known class-based
// selectors. The bool result is false when either search comes up empty.
func (p *ListingParser) NextPageURL(html string, currentURL string) (string, bool) {
	base, err := url.Parse(currentURL)
	if err != nil {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	region := doc.Find(paginationSelector).First()
	if region.Length() == 0 {
		region = doc.Find(paginationFallbackSelector).First()
	}
	if region.Length() == 0 {
		return "", false
	}

	next := region.Find(nextLinkSelector).First()
	if next.Length() == 0 {
		next = region.Find(nextLinkFallbackSelector).First()
	}
	href, ok := next.Attr("href")
	if !ok || href == "" {
		return "", false
	}

	resolved := resolveURL(base, href)
	if resolved == "" {
		return "", false
	}
	return resolved, true
}

// IsDetailURL reports whether a resolved URL has the shape of a product
// detail page: it contains a /products/ path segment and does not end in a
// trailing slash, which would indicate a collection link.
func IsDetailURL(rawURL string) bool {
	return strings.Contains(rawURL, "/products/") && !strings.HasSuffix(rawURL, "/")
}

// resolveURL resolves a possibly relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
