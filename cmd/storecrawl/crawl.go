package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/storecrawl/crawl"
	"github.com/fwojciec/storecrawl/goquery"
	sthttp "github.com/fwojciec/storecrawl/http"
	stprom "github.com/fwojciec/storecrawl/prometheus"
	stslog "github.com/fwojciec/storecrawl/slog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	sink, closeSink, err := c.buildSink(deps.Logger)
	if err != nil {
		return err
	}
	defer closeSink()

	fetcher := sthttp.NewFetcher()
	defer fetcher.Close()

	metrics := stprom.NewMetrics()
	var metricsServer *http.Server
	if c.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    c.MetricsAddr,
			Handler: promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				deps.Logger.Error("metrics server failed", "err", err)
			}
		}()
		defer metricsServer.Close()
		deps.Logger.Info("metrics server enabled", "addr", c.MetricsAddr)
	}

	extractor := goquery.NewExtractor()
	crawler := &crawl.Crawler{
		Fetcher:   stslog.NewLoggingFetcher(fetcher, deps.Logger),
		Listings:  goquery.NewListingParser(),
		Extractor: extractor,
		Sink:      sink,
		Limiter:   crawl.NewPacedLimiter(c.ListingDelay, c.DetailDelay),
		Metrics:   metrics,
		Logger:    deps.Logger,
		MaxPages:  c.MaxPages,
	}

	result, err := crawler.Run(deps.Ctx, c.URL)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "crawled %d pages, %d records (%d skipped) in %s\n",
			result.Pages, result.Records, result.Skipped, result.Duration.Round(time.Millisecond))
	}
	return err
}
