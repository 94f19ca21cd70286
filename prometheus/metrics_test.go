package prometheus_test

import (
	"testing"
	"time"

	"github.com/fwojciec/storecrawl"
	stprom "github.com/fwojciec/storecrawl/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	t.Run("counts fetches by scope", func(t *testing.T) {
		t.Parallel()

		m := stprom.NewMetrics()
		m.IncFetch(storecrawl.ScopeListing)
		m.IncFetch(storecrawl.ScopeDetail)
		m.IncFetch(storecrawl.ScopeDetail)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("listing")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("detail")))
	})

	t.Run("counts fetch errors by code", func(t *testing.T) {
		t.Parallel()

		m := stprom.NewMetrics()
		m.IncFetchError(storecrawl.ETIMEOUT)
		m.IncFetchError(storecrawl.ETIMEOUT)
		m.IncFetchError(storecrawl.ENOTFOUND)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchErrorsTotal.WithLabelValues("timeout")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchErrorsTotal.WithLabelValues("not_found")))
	})

	t.Run("counts records", func(t *testing.T) {
		t.Parallel()

		m := stprom.NewMetrics()
		m.IncRecords(3)
		m.IncRecords(2)

		assert.Equal(t, 5.0, testutil.ToFloat64(m.RecordsTotal))
	})

	t.Run("observes fetch durations", func(t *testing.T) {
		t.Parallel()

		m := stprom.NewMetrics()
		m.ObserveFetchDuration(100 * time.Millisecond)
		m.ObserveFetchDuration(200 * time.Millisecond)

		count, err := testutil.GatherAndCount(m.Registry, "storecrawl_fetch_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
