package main

import (
	"fmt"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/sqlite"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	records, err := sqlite.NewRecordService(db).FindRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storecrawl.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'storecrawl crawl' to populate the database.")
		return nil
	}

	for _, r := range records {
		availability := "in stock"
		if !r.Availability {
			availability = "out of stock"
		}
		fmt.Fprintf(deps.Stdout, "%-40s  %8.2f  %-12s  %s\n", r.Name, r.Price, availability, r.SourceURL)
	}

	return nil
}
