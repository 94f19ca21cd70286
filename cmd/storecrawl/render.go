package main

import (
	"fmt"

	"github.com/fwojciec/storecrawl/crawl"
	"github.com/fwojciec/storecrawl/goquery"
	"github.com/fwojciec/storecrawl/rod"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	sink, closeSink, err := c.buildSink(deps.Logger)
	if err != nil {
		return err
	}
	defer closeSink()

	bm, err := rod.NewBrowserManager()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer bm.Close()

	page, err := bm.NewPage()
	if err != nil {
		return err
	}
	defer page.Close()

	session := &crawl.Session{
		Driver:          rod.NewDriver(page),
		Cards:           goquery.NewExtractor(),
		Logger:          deps.Logger,
		SettleInterval:  c.SettleInterval,
		MaxScrollRounds: c.MaxRounds,
	}

	records, err := session.Run(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if err := sink.Store(deps.Ctx, records); err != nil {
		return fmt.Errorf("storing records: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "extracted %d records\n", len(records))
	return nil
}
