package mock

import (
	"context"

	"github.com/fwojciec/storecrawl"
)

var _ storecrawl.RecordSink = (*RecordSink)(nil)

// RecordSink is a mock implementation of storecrawl.RecordSink.
type RecordSink struct {
	StoreFn func(ctx context.Context, records []*storecrawl.ProductRecord) error
}

func (s *RecordSink) Store(ctx context.Context, records []*storecrawl.ProductRecord) error {
	return s.StoreFn(ctx, records)
}
