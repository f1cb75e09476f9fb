package schedule

import "time"

// DepartmentSchedule is a department's default working schedule. A
// department may define several named schedules; which one applies to an
// employee is designated on the employee record.
type DepartmentSchedule struct {
	ID               string
	Department       string
	Name             string
	EntryTime        time.Time // only hour/minute are significant
	ExitTime         time.Time
	ToleranceMinutes int
	// Flexible disables time enforcement entirely. Overrides are ignored
	// while this is set.
	Flexible  bool
	Overrides []DayOverride
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayOverride replaces parts of the parent schedule for one weekday.
// Absent time fields fall back to the parent schedule's values.
type DayOverride struct {
	ID         string
	ScheduleID string
	DayOfWeek  int // 1=Monday, ..., 7=Sunday
	EntryTime  *time.Time
	ExitTime   *time.Time
	// Split-shift fields. Both must be set for the day to have two segments.
	ExitTimeMorning    *time.Time
	EntryTimeAfternoon *time.Time
	// DayOff wins over every other field: the day has no expected attendance.
	DayOff    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DepartmentShift is a reusable, named shift a supervisor can assign to an
// employee for specific dates, overriding the department default.
type DepartmentShift struct {
	ID                 string
	Department         string
	Name               string
	EntryTime          time.Time
	ExitTime           time.Time
	ExitTimeMorning    *time.Time
	EntryTimeAfternoon *time.Time
	ToleranceMinutes   int
	Flexible           bool
	ActiveWeekdays     []int // 1=Monday, ..., 7=Sunday
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ShiftAssignment binds one shift to one employee on one calendar date.
// At most one assignment exists per (employee, date); writing a new one
// replaces the previous.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	Date       time.Time // day granularity
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ISOWeekday converts time.Weekday to the 1=Monday..7=Sunday convention
// used across schedule records.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// ActiveOn reports whether the shift may be assigned on the given date.
func (s DepartmentShift) ActiveOn(date time.Time) bool {
	wd := ISOWeekday(date.Weekday())
	for _, d := range s.ActiveWeekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// OverrideFor returns the schedule's override for a weekday, or nil.
func (s DepartmentSchedule) OverrideFor(dayOfWeek int) *DayOverride {
	for i := range s.Overrides {
		if s.Overrides[i].DayOfWeek == dayOfWeek {
			return &s.Overrides[i]
		}
	}
	return nil
}
