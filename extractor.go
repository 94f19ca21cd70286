package storecrawl

// RecordExtractor produces a normalized record from a product detail page.
//
// Extract is total: it never fails. Every field that cannot be resolved
// from the markup is set to its documented default, so the returned record
// is always fully populated. Internal lookup misses are converted to
// defaults locally, never propagated.
type RecordExtractor interface {
	Extract(html string, sourceURL string) *ProductRecord
}

// CardLister extracts records from the product cards of a fully rendered
// listing page. It is the rendering-path counterpart of RecordExtractor:
// structurally the same per-field fallback policy, applied to the settled
// DOM of a client-side-rendered page. Cards without a resolvable product
// link are skipped because SourceURL is the record's required dedup key.
type CardLister interface {
	ExtractCards(html string, baseURL string) ([]*ProductRecord, error)
}
