package domain

import "time"

// DateRange is an inclusive [Start, End] bound. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Valid reports whether the range is not inverted
func (r DateRange) Valid() bool {
	return r.Start == nil || r.End == nil || !r.End.Before(*r.Start)
}
