package usage

import "time"

// Record is one observed oracle-backed request.
type Record struct {
	Endpoint   string
	Status     string
	DurationMS int64
	CreatedAt  time.Time
}
