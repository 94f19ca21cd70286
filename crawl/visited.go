package crawl

import (
	"sync"

	"github.com/fwojciec/storecrawl/bloom"
)

// VisitedSet tracks listing-page URLs already crawled, for pagination loop
// detection. Bloom-filter membership means a false positive can end a crawl
// one page early in theory; the configured rate makes that vanishingly rare
// and the alternative — an unbounded exact set — is not needed for the page
// counts a single storefront produces.
type VisitedSet struct {
	mu   sync.Mutex
	seen *bloom.Filter
}

// NewVisitedSet creates a VisitedSet sized for n expected pages with the
// given false positive rate.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	return &VisitedSet{seen: bloom.NewFilter(n, fpRate)}
}

// Add marks a page URL as visited.
func (v *VisitedSet) Add(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seen.Add(url)
}

// Seen returns true if the page URL has already been visited.
func (v *VisitedSet) Seen(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seen.Test(url)
}
