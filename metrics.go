package storecrawl

import "time"

// Metrics receives crawl instrumentation events. Implementations must be
// safe for use from the crawl loop; a nil Metrics disables instrumentation.
type Metrics interface {
	// IncFetch counts an outbound fetch by request scope.
	IncFetch(scope RequestScope)

	// IncFetchError counts a failed fetch by error code.
	IncFetchError(code string)

	// IncRecords counts extracted records.
	IncRecords(n int)

	// ObserveFetchDuration records the latency of one fetch.
	ObserveFetchDuration(d time.Duration)
}
