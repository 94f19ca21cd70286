package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/mock"
	stslog "github.com/fwojciec/storecrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSink_Store(t *testing.T) {
	t.Parallel()

	t.Run("logs record count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordSink{
			StoreFn: func(ctx context.Context, records []*storecrawl.ProductRecord) error {
				return nil
			},
		}

		sink := stslog.NewLoggingSink(inner, logger)
		err := sink.Store(context.Background(), []*storecrawl.ProductRecord{
			storecrawl.NewProductRecord("https://shop.example.com/products/a"),
			storecrawl.NewProductRecord("https://shop.example.com/products/b"),
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "store")
		assert.Contains(t, output, "records=2")
	})

	t.Run("propagates and logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordSink{
			StoreFn: func(ctx context.Context, records []*storecrawl.ProductRecord) error {
				return errors.New("disk full")
			},
		}

		sink := stslog.NewLoggingSink(inner, logger)
		err := sink.Store(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
