// Package crawl provides storefront crawling orchestration. It coordinates
// pagination, fetching, field extraction, politeness pacing, and handoff of
// the finished record set to a sink.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/storecrawl"
)

// Visited-set sizing for pagination loop detection.
const (
	visitedExpectedPages     = 4096
	visitedFalsePositiveRate = 0.0001
)

// DefaultMaxPages bounds a single crawl run. The catalog's own termination
// signals (no next link, zero cards) normally stop the crawl well before
// this; the bound guarantees termination when they don't.
const DefaultMaxPages = 200

// Crawler walks a paginated storefront listing, extracting one record per
// product detail page. It runs as a single logical thread of control: each
// fetch fully completes before the next begins, which keeps the politeness
// pacing honest and the cycle detection trivially correct.
type Crawler struct {
	Fetcher   storecrawl.Fetcher
	Listings  storecrawl.ListingParser
	Extractor storecrawl.RecordExtractor
	Sink      storecrawl.RecordSink
	Limiter   storecrawl.Limiter
	Metrics   storecrawl.Metrics
	Logger    *slog.Logger

	// MaxPages caps the number of listing pages visited.
	// Defaults to DefaultMaxPages.
	MaxPages int

	// RetryDelays configures backoff between fetch attempts.
	// Defaults to DefaultRetryDelays().
	RetryDelays []time.Duration
}

// Result holds the outcome of one crawl run.
type Result struct {
	Pages    int
	Records  int
	Skipped  int
	Duration time.Duration
}

// Run crawls listing pages starting from baseURL until the catalog is
// exhausted, then hands the collected records to the sink.
//
// Failure semantics follow a partial-result policy: a listing-page fetch
// failure stops the crawl and is returned as the error, but everything
// already collected is still stored; a product-detail fetch failure only
// skips that product. Run never discards collected records.
func (c *Crawler) Run(ctx context.Context, baseURL string) (*Result, error) {
	if c.Fetcher == nil || c.Listings == nil || c.Extractor == nil || c.Sink == nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "crawler is missing a required dependency")
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	start := time.Now()
	visited := NewVisitedSet(visitedExpectedPages, visitedFalsePositiveRate)
	seen := make(map[string]struct{})
	var records []*storecrawl.ProductRecord
	result := &Result{}
	var crawlErr error

	pageURL := baseURL

pages:
	for pageIndex := 1; ; pageIndex++ {
		if pageIndex > maxPages {
			logger.Warn("page budget exhausted", "pages", maxPages)
			break
		}
		if visited.Seen(pageURL) {
			logger.Warn("pagination cycle detected", "url", pageURL)
			break
		}
		visited.Add(pageURL)

		if err := c.wait(ctx, storecrawl.ScopeListing); err != nil {
			crawlErr = err
			break
		}
		html, err := c.fetch(ctx, pageURL, storecrawl.ScopeListing, delays)
		if err != nil {
			logger.Error("listing fetch failed", "url", pageURL, "err", err)
			crawlErr = err
			break
		}
		result.Pages++

		listing, err := c.Listings.ParseListing(html, pageURL)
		if err != nil {
			crawlErr = err
			break
		}
		if listing.CardCount == 0 {
			logger.Info("no product cards found; end of catalog", "url", pageURL)
			break
		}

		for _, productURL := range listing.ProductURLs {
			if _, dup := seen[productURL]; dup {
				continue
			}
			seen[productURL] = struct{}{}

			if err := c.wait(ctx, storecrawl.ScopeDetail); err != nil {
				crawlErr = err
				break pages
			}
			detail, err := c.fetch(ctx, productURL, storecrawl.ScopeDetail, delays)
			if err != nil {
				result.Skipped++
				logger.Warn("skipping product", "url", productURL, "err", err)
				continue
			}

			rec := c.Extractor.Extract(detail, productURL)
			records = append(records, rec)
			if c.Metrics != nil {
				c.Metrics.IncRecords(1)
			}
		}

		next, ok := c.Listings.NextPageURL(html, pageURL)
		if !ok {
			logger.Info("no next link; crawl complete", "pages", result.Pages)
			break
		}
		if next == pageURL {
			// Final pages have been observed with a "next" control that
			// re-points to themselves.
			logger.Info("next link repeats current page; crawl complete", "url", pageURL)
			break
		}
		pageURL = PageURL(baseURL, pageIndex+1)
	}

	result.Records = len(records)
	result.Duration = time.Since(start)

	if err := c.Sink.Store(ctx, records); err != nil {
		return result, fmt.Errorf("storing records: %w", err)
	}
	return result, crawlErr
}

// fetch performs one instrumented fetch with bounded retry.
func (c *Crawler) fetch(ctx context.Context, url string, scope storecrawl.RequestScope, delays []time.Duration) (string, error) {
	if c.Metrics != nil {
		c.Metrics.IncFetch(scope)
	}
	begin := time.Now()
	body, err := FetchWithRetryDelays(ctx, url, c.Fetcher.Fetch, delays)
	if c.Metrics != nil {
		c.Metrics.ObserveFetchDuration(time.Since(begin))
		if err != nil {
			c.Metrics.IncFetchError(storecrawl.ErrorCode(err))
		}
	}
	return body, err
}

// wait applies politeness pacing when a limiter is configured.
func (c *Crawler) wait(ctx context.Context, scope storecrawl.RequestScope) error {
	if c.Limiter == nil {
		return nil
	}
	return c.Limiter.Wait(ctx, scope)
}

// PageURL returns the listing URL for a 1-based page index: page 1 is the
// bare base URL, page N appends a page-index path segment.
func PageURL(baseURL string, index int) string {
	if index <= 1 {
		return baseURL
	}
	return fmt.Sprintf("%s/page/%d/", strings.TrimSuffix(baseURL, "/"), index)
}
