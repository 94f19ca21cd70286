// Package rod drives a headless Chrome browser for listing pages that
// render their product cards with client-side script.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/storecrawl"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Driver implements storecrawl.PageDriver at compile time.
var _ storecrawl.PageDriver = (*Driver)(nil)

// Driver adapts a single browser page to the PageDriver interface. A Driver
// owns its page for the lifetime of one rendering session and is not safe
// for concurrent use.
type Driver struct {
	page *rod.Page
}

// NewDriver wraps an open browser page. The caller retains ownership of the
// page and is responsible for closing it.
func NewDriver(page *rod.Page) *Driver {
	return &Driver{page: page}
}

// Navigate loads the URL and waits for the load event.
func (d *Driver) Navigate(ctx context.Context, url string) error {
	page := d.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitVisible blocks until an element matching selector is visible, or the
// timeout elapses.
func (d *Driver) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	el, err := d.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		return err
	}
	return el.WaitVisible()
}

// Click finds an element matching selector and left-clicks it.
func (d *Driver) Click(ctx context.Context, selector string, timeout time.Duration) error {
	el, err := d.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// PressEscape sends an Escape keypress to the page.
func (d *Driver) PressEscape(ctx context.Context) error {
	return d.page.Context(ctx).Keyboard.Press(input.Escape)
}

// ScrollToBottom scrolls the window to the bottom of the document.
func (d *Driver) ScrollToBottom(ctx context.Context) error {
	_, err := d.page.Context(ctx).Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}

// PageHeight returns the current document height in pixels.
func (d *Driver) PageHeight(ctx context.Context) (float64, error) {
	res, err := d.page.Context(ctx).Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, err
	}
	return res.Value.Num(), nil
}

// HTML returns the page's current HTML.
func (d *Driver) HTML(ctx context.Context) (string, error) {
	return d.page.Context(ctx).HTML()
}
