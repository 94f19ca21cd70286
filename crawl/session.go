package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/storecrawl"
)

// Popup selectors for the storefront's newsletter dialog.
const (
	popupSelector      = `div[data-testid="POPUP"]`
	popupCloseSelector = `button[aria-label="Close dialog"]`
)

// Rendering session defaults. The settle interval trades latency for not
// depending on a "content fully loaded" signal the page never emits; the
// round and stability bounds guarantee termination and guard against
// transient stalls ending the scroll early.
const (
	DefaultPopupTimeout    = 7 * time.Second
	DefaultClickTimeout    = 3 * time.Second
	DefaultSettleInterval  = 5 * time.Second
	DefaultMaxScrollRounds = 40
	DefaultStableRounds    = 2
)

// Session crawls a listing page that loads its products via client-side
// script. It drives a caller-supplied page: dismisses the newsletter popup
// if one appears, scrolls until the page height stops growing, then
// extracts every product card from the settled DOM.
type Session struct {
	Driver storecrawl.PageDriver
	Cards  storecrawl.CardLister
	Logger *slog.Logger

	// PopupTimeout bounds the wait for the popup container to appear;
	// ClickTimeout bounds the close-control click.
	PopupTimeout time.Duration
	ClickTimeout time.Duration

	// SettleInterval is the fixed wait between scroll commands.
	SettleInterval time.Duration

	// MaxScrollRounds caps the stabilization loop; StableRounds is the
	// number of consecutive unchanged height checks required before the
	// page counts as settled.
	MaxScrollRounds int
	StableRounds    int
}

// Run navigates to url, waits for the page to stabilize, and returns the
// extracted records in card order. Popup and scroll failures are non-fatal:
// they are logged and the session proceeds with whatever the page shows.
func (s *Session) Run(ctx context.Context, url string) ([]*storecrawl.ProductRecord, error) {
	if s.Driver == nil || s.Cards == nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "session is missing a required dependency")
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := s.Driver.Navigate(ctx, url); err != nil {
		return nil, err
	}

	s.dismissPopup(ctx, logger)

	if err := s.stabilize(ctx, logger); err != nil {
		return nil, err
	}

	html, err := s.Driver.HTML(ctx)
	if err != nil {
		return nil, err
	}

	return s.Cards.ExtractCards(html, url)
}

// dismissPopup closes the newsletter popup if it appears. Absence within
// the timeout is the common case, not a failure. A failed click falls back
// to a generic Escape keypress.
func (s *Session) dismissPopup(ctx context.Context, logger *slog.Logger) {
	popupTimeout := s.PopupTimeout
	if popupTimeout <= 0 {
		popupTimeout = DefaultPopupTimeout
	}
	clickTimeout := s.ClickTimeout
	if clickTimeout <= 0 {
		clickTimeout = DefaultClickTimeout
	}

	if err := s.Driver.WaitVisible(ctx, popupSelector, popupTimeout); err != nil {
		logger.Debug("no popup appeared", "err", err)
		return
	}

	if err := s.Driver.Click(ctx, popupCloseSelector, clickTimeout); err != nil {
		logger.Warn("popup close click failed, sending escape", "err", err)
		if err := s.Driver.PressEscape(ctx); err != nil {
			logger.Warn("escape fallback failed", "err", err)
		}
		return
	}
	logger.Debug("popup dismissed")
}

// stabilize repeatedly scrolls to the page bottom and waits a settle
// interval until the page height stops increasing for StableRounds
// consecutive checks, or MaxScrollRounds is reached.
func (s *Session) stabilize(ctx context.Context, logger *slog.Logger) error {
	settle := s.SettleInterval
	if settle <= 0 {
		settle = DefaultSettleInterval
	}
	maxRounds := s.MaxScrollRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxScrollRounds
	}
	stableTarget := s.StableRounds
	if stableTarget <= 0 {
		stableTarget = DefaultStableRounds
	}

	lastHeight, err := s.Driver.PageHeight(ctx)
	if err != nil {
		return err
	}

	stable := 0
	for round := 0; round < maxRounds; round++ {
		if err := s.Driver.ScrollToBottom(ctx); err != nil {
			logger.Warn("scroll failed, proceeding with current content", "err", err)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(settle):
		}

		height, err := s.Driver.PageHeight(ctx)
		if err != nil {
			logger.Warn("height check failed, proceeding with current content", "err", err)
			return nil
		}

		if height == lastHeight {
			stable++
			if stable >= stableTarget {
				logger.Debug("page height settled", "height", height, "rounds", round+1)
				return nil
			}
		} else {
			stable = 0
			lastHeight = height
		}
	}

	logger.Warn("scroll loop hit round limit before settling", "rounds", maxRounds)
	return nil
}
