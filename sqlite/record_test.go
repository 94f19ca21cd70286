package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/storecrawl"
	"github.com/fwojciec/storecrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordService_Store(t *testing.T) {
	t.Parallel()

	t.Run("round-trips records in crawl order", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRecordService(db)

		a := storecrawl.NewProductRecord("https://shop.example.com/products/a")
		a.Name = "Linen Shirt"
		a.Price = 49.0
		a.Availability = false
		b := storecrawl.NewProductRecord("https://shop.example.com/products/b")
		b.Name = "Wool Socks"

		require.NoError(t, svc.Store(context.Background(), []*storecrawl.ProductRecord{a, b}))

		got, err := svc.FindRecords(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Linen Shirt", got[0].Name)
		assert.Equal(t, 49.0, got[0].Price)
		assert.False(t, got[0].Availability)
		assert.Equal(t, "Wool Socks", got[1].Name)
		assert.True(t, got[1].Availability)
	})

	t.Run("replaces the previous record set", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRecordService(db)

		first := []*storecrawl.ProductRecord{
			storecrawl.NewProductRecord("https://shop.example.com/products/a"),
			storecrawl.NewProductRecord("https://shop.example.com/products/b"),
		}
		require.NoError(t, svc.Store(context.Background(), first))

		second := []*storecrawl.ProductRecord{
			storecrawl.NewProductRecord("https://shop.example.com/products/c"),
		}
		require.NoError(t, svc.Store(context.Background(), second))

		got, err := svc.FindRecords(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://shop.example.com/products/c", got[0].SourceURL)
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRecordService(db)

		bad := storecrawl.NewProductRecord("")
		err := svc.Store(context.Background(), []*storecrawl.ProductRecord{bad})

		require.Error(t, err)
		assert.Equal(t, storecrawl.EINVALID, storecrawl.ErrorCode(err))
	})

	t.Run("empty set clears the table", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRecordService(db)

		require.NoError(t, svc.Store(context.Background(), []*storecrawl.ProductRecord{
			storecrawl.NewProductRecord("https://shop.example.com/products/a"),
		}))
		require.NoError(t, svc.Store(context.Background(), nil))

		got, err := svc.FindRecords(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
