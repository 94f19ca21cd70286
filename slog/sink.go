package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storecrawl"
)

// Ensure LoggingSink implements storecrawl.RecordSink.
var _ storecrawl.RecordSink = (*LoggingSink)(nil)

// LoggingSink wraps a RecordSink with store logging.
type LoggingSink struct {
	next   storecrawl.RecordSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next storecrawl.RecordSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Store logs the record count and delegates to the wrapped sink.
func (s *LoggingSink) Store(ctx context.Context, records []*storecrawl.ProductRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store",
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Store(ctx, records)
}
