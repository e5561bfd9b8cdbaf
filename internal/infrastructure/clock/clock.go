package clock

import (
	"time"

	"lpu_quotation/internal/usecase/interfaces"
)

// System is the wall clock, in UTC.
type System struct{}

var _ interfaces.IClock = System{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
