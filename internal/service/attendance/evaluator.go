package attendance

import (
	"sort"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
)

// EvaluateDay derives the attendance facts for one employee-day from the
// resolved schedule and the raw punches. Pure: identical inputs always
// produce identical facts, with no dependence on the wall clock.
func EvaluateDay(employeeID string, resolved attendance.ResolvedDay, events []clock.Event) attendance.DayFacts {
	ordered := make([]clock.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	facts := attendance.DayFacts{
		EmployeeID: employeeID,
		Date:       resolved.Date,
		Resolved:   resolved,
		Events:     ordered,
		IsComplete: true,
	}

	// Greedy chronological pairing: each ENTRY opens a segment, the next
	// EXIT closes it. An ENTRY while a segment is already open is a
	// duplicate punch and folds into the open segment; an EXIT with nothing
	// open is a stray and is ignored.
	openIdx := -1
	for i := range ordered {
		ev := ordered[i]
		switch ev.Type {
		case clock.EventTypeEntry:
			if openIdx < 0 {
				facts.Segments = append(facts.Segments, attendance.Segment{Entry: ev})
				openIdx = len(facts.Segments) - 1
			}
		case clock.EventTypeExit:
			if openIdx >= 0 {
				exit := ev
				facts.Segments[openIdx].Exit = &exit
				openIdx = -1
			}
		}
	}

	var worked time.Duration
	for _, seg := range facts.Segments {
		if seg.Exit == nil {
			// Open segment: no hours counted, day incomplete.
			facts.IsComplete = false
			continue
		}
		worked += seg.Duration()
	}
	facts.WorkedHours = worked.Hours()

	// Day-off and flexible days are never flagged; hours are still tracked.
	if resolved.DayOff || resolved.Flexible {
		return facts
	}

	tolerance := time.Duration(resolved.ToleranceMinutes) * time.Minute

	// Only the first ENTRY of the day is checked for lateness, even on
	// split-shift days. Arriving exactly at entry+tolerance is on time.
	if resolved.EntryTime != nil {
		if first := firstEntry(ordered); first != nil {
			bound := resolved.EntryTime.Add(tolerance)
			facts.IsLate = first.Timestamp.After(bound)
		}
	}

	// Symmetrically, only the last EXIT is checked for early departure.
	if resolved.ExitTime != nil {
		if last := lastExit(ordered); last != nil {
			bound := resolved.ExitTime.Add(-tolerance)
			facts.IsEarlyDeparture = last.Timestamp.Before(bound)
		}
	}

	return facts
}

func firstEntry(events []clock.Event) *clock.Event {
	for i := range events {
		if events[i].Type == clock.EventTypeEntry {
			return &events[i]
		}
	}
	return nil
}

func lastExit(events []clock.Event) *clock.Event {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == clock.EventTypeExit {
			return &events[i]
		}
	}
	return nil
}
