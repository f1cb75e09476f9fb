package attendance

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
)

// ResolutionSource tells which configuration layer produced a ResolvedDay.
type ResolutionSource string

const (
	SourceShift    ResolutionSource = "shift"    // explicit per-date shift assignment
	SourceOverride ResolutionSource = "override" // weekday override on the schedule
	SourceSchedule ResolutionSource = "schedule" // department default times
	SourceNone     ResolutionSource = "none"     // no configuration resolves the day
)

// ResolvedDay is the concrete expected schedule for one employee on one
// calendar date, after applying assignment > override > default precedence.
// Times are instants in the department's timezone. When DayOff or Flexible
// is set no times are enforced.
type ResolvedDay struct {
	Date     time.Time
	DayOff   bool
	Flexible bool

	EntryTime *time.Time
	ExitTime  *time.Time
	// Split-shift boundaries; both set iff the day has two segments.
	ExitTimeMorning    *time.Time
	EntryTimeAfternoon *time.Time

	ToleranceMinutes int
	Source           ResolutionSource
	ShiftID          *string
	ScheduleID       *string
}

// Split reports whether the resolved day has a morning and an afternoon
// segment.
func (r ResolvedDay) Split() bool {
	return r.ExitTimeMorning != nil && r.EntryTimeAfternoon != nil
}

// Segment is one paired ENTRY/EXIT span of a day. Exit is nil while the
// segment is still open.
type Segment struct {
	Entry clock.Event
	Exit  *clock.Event
}

// Duration returns the worked span of a closed segment, zero for an open one.
func (s Segment) Duration() time.Duration {
	if s.Exit == nil {
		return 0
	}
	return s.Exit.Timestamp.Sub(s.Entry.Timestamp)
}

// DayFacts are the attendance facts for one employee-day. Always derived
// from the resolved schedule and the raw events, never stored.
type DayFacts struct {
	EmployeeID string
	Date       time.Time
	Resolved   ResolvedDay
	Events     []clock.Event
	Segments   []Segment

	IsLate           bool
	IsEarlyDeparture bool
	IsComplete       bool
	WorkedHours      float64
}
