package cycler

import "time"

// Metrics defines the interface for observing cycler operations.
type Metrics interface {
	// RecordLookup records the duration of a random-access lookup
	// (index_to_interval, index_from_date, interval_from_date).
	RecordLookup(op string, duration time.Duration)

	// RecordStep records a cursor traversal step ("next" or "back").
	RecordStep(direction string)
}

// NoopMetrics is a no-op implementation of the Metrics interface.
type NoopMetrics struct{}

func (n *NoopMetrics) RecordLookup(op string, duration time.Duration) {}
func (n *NoopMetrics) RecordStep(direction string)                    {}
