package attendance

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
)

// ResolveInput carries everything the resolver needs, fetched up front by
// the caller. The resolver itself touches no storage and no clock.
type ResolveInput struct {
	// Date is the calendar date being resolved, at midnight in Location.
	Date     time.Time
	Location *time.Location

	// Assignment is the employee's shift assignment for Date, if any.
	// Shift is the shift it references; nil when the shift has since been
	// deleted, in which case resolution falls back to the department default.
	Assignment *schedule.ShiftAssignment
	Shift      *schedule.DepartmentShift

	// Schedules are the department's named schedules with their overrides.
	// ScheduleName is the employee's designated schedule; nil picks the
	// first by name order.
	Schedules    []schedule.DepartmentSchedule
	ScheduleName *string
}

// ResolveDay applies the configuration precedence for one employee-day:
// shift assignment, then the weekday override of the applicable department
// schedule, then the schedule's base times. Missing configuration resolves
// to an unscheduled day, never an error.
func ResolveDay(in ResolveInput) attendance.ResolvedDay {
	resolved := attendance.ResolvedDay{
		Date:   in.Date,
		Source: attendance.SourceNone,
	}

	if in.Assignment != nil && in.Shift != nil {
		shift := in.Shift
		resolved.Source = attendance.SourceShift
		resolved.ShiftID = &shift.ID
		resolved.ToleranceMinutes = shift.ToleranceMinutes
		if shift.Flexible {
			resolved.Flexible = true
			return resolved
		}
		resolved.EntryTime = onDate(in.Date, shift.EntryTime, in.Location)
		resolved.ExitTime = onDate(in.Date, shift.ExitTime, in.Location)
		resolved.ExitTimeMorning = onDatePtr(in.Date, shift.ExitTimeMorning, in.Location)
		resolved.EntryTimeAfternoon = onDatePtr(in.Date, shift.EntryTimeAfternoon, in.Location)
		return resolved
	}

	sched := pickSchedule(in.Schedules, in.ScheduleName)
	if sched == nil {
		// Nothing configured for this department: unscheduled day.
		resolved.DayOff = true
		return resolved
	}
	resolved.ScheduleID = &sched.ID

	if sched.Flexible {
		resolved.Source = attendance.SourceSchedule
		resolved.Flexible = true
		resolved.ToleranceMinutes = sched.ToleranceMinutes
		return resolved
	}

	dayOfWeek := schedule.ISOWeekday(in.Date.Weekday())

	if override := sched.OverrideFor(dayOfWeek); override != nil {
		resolved.Source = attendance.SourceOverride
		resolved.ToleranceMinutes = sched.ToleranceMinutes
		if override.DayOff {
			resolved.DayOff = true
			return resolved
		}
		// Field-by-field fallback to the schedule's base times.
		entry := sched.EntryTime
		if override.EntryTime != nil {
			entry = *override.EntryTime
		}
		exit := sched.ExitTime
		if override.ExitTime != nil {
			exit = *override.ExitTime
		}
		resolved.EntryTime = onDate(in.Date, entry, in.Location)
		resolved.ExitTime = onDate(in.Date, exit, in.Location)
		resolved.ExitTimeMorning = onDatePtr(in.Date, override.ExitTimeMorning, in.Location)
		resolved.EntryTimeAfternoon = onDatePtr(in.Date, override.EntryTimeAfternoon, in.Location)
		return resolved
	}

	resolved.Source = attendance.SourceSchedule

	// Default weekend rule: without an explicit override, Saturday and
	// Sunday carry no expected attendance.
	if dayOfWeek == 6 || dayOfWeek == 7 {
		resolved.DayOff = true
		return resolved
	}

	resolved.ToleranceMinutes = sched.ToleranceMinutes
	resolved.EntryTime = onDate(in.Date, sched.EntryTime, in.Location)
	resolved.ExitTime = onDate(in.Date, sched.ExitTime, in.Location)
	return resolved
}

// pickSchedule selects the employee's designated schedule by name, falling
// back to the department's first when no name is set or nothing matches.
func pickSchedule(schedules []schedule.DepartmentSchedule, name *string) *schedule.DepartmentSchedule {
	if len(schedules) == 0 {
		return nil
	}
	if name != nil {
		for i := range schedules {
			if schedules[i].Name == *name {
				return &schedules[i]
			}
		}
	}
	return &schedules[0]
}

// onDate anchors a wall-clock time to a calendar date in a timezone.
func onDate(date time.Time, timeOfDay time.Time, loc *time.Location) *time.Time {
	t := time.Date(date.Year(), date.Month(), date.Day(), timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, loc)
	return &t
}

func onDatePtr(date time.Time, timeOfDay *time.Time, loc *time.Location) *time.Time {
	if timeOfDay == nil {
		return nil
	}
	return onDate(date, *timeOfDay, loc)
}
