package pure

import "github.com/rickb777/date/v2/timespan"

// Stats is a snapshot of a Table's counters.
type Stats struct {
	Entries  int               // present entries
	Hits     uint64            // calls answered from the table
	Misses   uint64            // calls that evaluated the function
	Failures uint64            // evaluations that panicked
	Slowest  timespan.TimeSpan // longest successful evaluation, zero before the first one
}
