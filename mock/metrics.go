package mock

import (
	"time"

	"github.com/fwojciec/storecrawl"
)

var _ storecrawl.Metrics = (*Metrics)(nil)

// Metrics is a mock implementation of storecrawl.Metrics.
type Metrics struct {
	IncFetchFn             func(scope storecrawl.RequestScope)
	IncFetchErrorFn        func(code string)
	IncRecordsFn           func(n int)
	ObserveFetchDurationFn func(d time.Duration)
}

func (m *Metrics) IncFetch(scope storecrawl.RequestScope) {
	m.IncFetchFn(scope)
}

func (m *Metrics) IncFetchError(code string) {
	m.IncFetchErrorFn(code)
}

func (m *Metrics) IncRecords(n int) {
	m.IncRecordsFn(n)
}

func (m *Metrics) ObserveFetchDuration(d time.Duration) {
	m.ObserveFetchDurationFn(d)
}
