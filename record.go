package storecrawl

import "context"

// Field defaults used when a markup signal cannot be resolved. Records are
// always fully populated; defaults stand in for missing signals rather than
// the field being omitted.
const (
	DefaultText   = "N/A" // name, description, category, imageURL
	DefaultPrice  = 0.0
	DefaultRating = 0.0 // the source markup carries no rating signal
)

// ProductRecord is one normalized catalog entry.
//
// The JSON field names match the downstream search-index mapping: name and
// description are indexed as full text, price and rating as numerics, and
// category, availability, and image_url as exact-match tokens.
type ProductRecord struct {
	SourceURL    string  `json:"source_url"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	Category     string  `json:"category"`
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"image_url"`
}

// NewProductRecord returns a record for sourceURL with every field set to
// its default. Availability defaults to true: absence of an availability
// node is treated as in stock (optimistic default, preserved from the
// observed source behavior).
func NewProductRecord(sourceURL string) *ProductRecord {
	return &ProductRecord{
		SourceURL:    sourceURL,
		Name:         DefaultText,
		Price:        DefaultPrice,
		Description:  DefaultText,
		Rating:       DefaultRating,
		Category:     DefaultText,
		Availability: true,
		ImageURL:     DefaultText,
	}
}

// Validate returns an error if the record violates its invariants.
func (r *ProductRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.Price < 0 {
		return Errorf(EINVALID, "record price cannot be negative")
	}
	return nil
}

// RecordSink accepts the finished record sequence for persistence or
// indexing. The full ordered sequence is handed over at end of crawl, not
// streamed per record; the sink owns the serialization format.
type RecordSink interface {
	Store(ctx context.Context, records []*ProductRecord) error
}
