package mock

import (
	"context"
	"time"

	"github.com/fwojciec/storecrawl"
)

var _ storecrawl.PageDriver = (*PageDriver)(nil)

// PageDriver is a mock implementation of storecrawl.PageDriver.
type PageDriver struct {
	NavigateFn       func(ctx context.Context, url string) error
	WaitVisibleFn    func(ctx context.Context, selector string, timeout time.Duration) error
	ClickFn          func(ctx context.Context, selector string, timeout time.Duration) error
	PressEscapeFn    func(ctx context.Context) error
	ScrollToBottomFn func(ctx context.Context) error
	PageHeightFn     func(ctx context.Context) (float64, error)
	HTMLFn           func(ctx context.Context) (string, error)
}

func (d *PageDriver) Navigate(ctx context.Context, url string) error {
	return d.NavigateFn(ctx, url)
}

func (d *PageDriver) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return d.WaitVisibleFn(ctx, selector, timeout)
}

func (d *PageDriver) Click(ctx context.Context, selector string, timeout time.Duration) error {
	return d.ClickFn(ctx, selector, timeout)
}

func (d *PageDriver) PressEscape(ctx context.Context) error {
	return d.PressEscapeFn(ctx)
}

func (d *PageDriver) ScrollToBottom(ctx context.Context) error {
	return d.ScrollToBottomFn(ctx)
}

func (d *PageDriver) PageHeight(ctx context.Context) (float64, error) {
	return d.PageHeightFn(ctx)
}

func (d *PageDriver) HTML(ctx context.Context) (string, error) {
	return d.HTMLFn(ctx)
}
