package storecrawl

import (
	"context"
	"time"
)

// PageDriver abstracts a live browser page supplied by the caller.
// The rendering session only describes the protocol of interacting with a
// rendered page — waiting, clicking, scrolling, querying — while the
// browser's lifecycle stays with whoever created the page.
type PageDriver interface {
	// Navigate loads url and waits until the document structure is attached.
	Navigate(ctx context.Context, url string) error

	// WaitVisible waits up to timeout for the selector to become visible.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Click locates the selector within timeout and clicks it.
	Click(ctx context.Context, selector string, timeout time.Duration) error

	// PressEscape sends an Escape keypress, used as a generic cancel signal.
	PressEscape(ctx context.Context) error

	// ScrollToBottom commands the page to scroll to its current bottom.
	ScrollToBottom(ctx context.Context) error

	// PageHeight returns the current total page height in pixels.
	PageHeight(ctx context.Context) (float64, error)

	// HTML returns the current rendered document.
	HTML(ctx context.Context) (string, error)
}
