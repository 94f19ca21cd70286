package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/elasticsearch"
	"github.com/fwojciec/storecrawl/fs"
	stslog "github.com/fwojciec/storecrawl/slog"
	"github.com/fwojciec/storecrawl/sqlite"
)

// Dependencies holds shared context and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl   CrawlCmd   `cmd:"" help:"Crawl listing pages and product detail pages"`
	Render  RenderCmd  `cmd:"" help:"Extract product cards from a script-rendered listing page"`
	Records RecordsCmd `cmd:"" help:"List records stored in a SQLite database"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SinkFlags selects where extracted records are stored. The JSON file is
// always written; database sinks are additive.
type SinkFlags struct {
	Out     string   `default:"products_data.json" help:"Output JSON file path"`
	DB      string   `help:"Also store records in a SQLite database at this path"`
	ES      []string `name:"es" help:"Also index records in Elasticsearch at these addresses (repeatable)"`
	ESIndex string   `name:"es-index" default:"products" help:"Elasticsearch index name"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL string `arg:"" help:"Listing page URL to start from"`
	SinkFlags

	MaxPages     int           `default:"200" help:"Maximum listing pages to visit"`
	ListingDelay time.Duration `default:"1s" help:"Minimum delay between listing page requests"`
	DetailDelay  time.Duration `default:"500ms" help:"Minimum delay between product detail requests"`
	MetricsAddr  string        `help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	URL string `arg:"" help:"Script-rendered listing page URL"`
	SinkFlags

	SettleInterval time.Duration `default:"5s" help:"Wait between scroll rounds"`
	MaxRounds      int           `default:"40" help:"Maximum scroll rounds before giving up"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	DB string `arg:"" help:"SQLite database path"`
}

// buildSink assembles the configured record sinks behind a single RecordSink.
// The returned close function releases any database connections.
func (f *SinkFlags) buildSink(logger *slog.Logger) (storecrawl.RecordSink, func() error, error) {
	sinks := []storecrawl.RecordSink{fs.NewJSONSink(f.Out)}
	closers := []func() error{}

	if f.DB != "" {
		db := sqlite.NewDB(f.DB)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open database at %q: %w", f.DB, err)
		}
		closers = append(closers, db.Close)
		sinks = append(sinks, sqlite.NewRecordService(db))
	}

	if len(f.ES) > 0 {
		es, err := elasticsearch.NewSink(f.ES, elasticsearch.WithIndex(f.ESIndex))
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, es)
	}

	closeAll := func() error {
		var firstErr error
		for _, c := range closers {
			if err := c(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	return stslog.NewLoggingSink(multiSink(sinks), logger), closeAll, nil
}

// multiSink fans a store call out to every configured sink.
type multiSink []storecrawl.RecordSink

func (m multiSink) Store(ctx context.Context, records []*storecrawl.ProductRecord) error {
	for _, s := range m {
		if err := s.Store(ctx, records); err != nil {
			return err
		}
	}
	return nil
}
