package attendance

import (
	"testing"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func atPtr(hour, minute int) *time.Time {
	t := at(hour, minute)
	return &t
}

func punch(id string, typ clock.EventType, hour, minute int) clock.Event {
	return clock.Event{
		ID:         id,
		EmployeeID: "emp-1",
		Type:       typ,
		Timestamp:  at(hour, minute),
	}
}

func standardDay() attendance.ResolvedDay {
	return attendance.ResolvedDay{
		Date:             at(0, 0),
		EntryTime:        atPtr(9, 0),
		ExitTime:         atPtr(18, 0),
		ToleranceMinutes: 10,
		Source:           attendance.SourceSchedule,
	}
}

func TestEvaluateDay_LateAndEarlyDeparture(t *testing.T) {
	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 9, 12),
		punch("e2", clock.EventTypeExit, 17, 50),
	}

	facts := EvaluateDay("emp-1", standardDay(), events)

	assert.True(t, facts.IsLate)
	assert.False(t, facts.IsEarlyDeparture) // 17:50 is exactly exit-tolerance
	assert.True(t, facts.IsComplete)
	assert.InDelta(t, 8.633, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_ToleranceBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		entry     time.Time
		exit      time.Time
		wantLate  bool
		wantEarly bool
	}{
		{"exactly at entry+tolerance is on time", at(9, 10), at(18, 0), false, false},
		{"one minute past tolerance is late", at(9, 11), at(18, 0), true, false},
		{"exactly at exit-tolerance is on time", at(9, 0), at(17, 50), false, false},
		{"one minute before the bound is early", at(9, 0), at(17, 49), false, true},
		{"before entry is on time", at(8, 30), at(18, 30), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []clock.Event{
				{ID: "e1", Type: clock.EventTypeEntry, Timestamp: tt.entry},
				{ID: "e2", Type: clock.EventTypeExit, Timestamp: tt.exit},
			}
			facts := EvaluateDay("emp-1", standardDay(), events)
			assert.Equal(t, tt.wantLate, facts.IsLate)
			assert.Equal(t, tt.wantEarly, facts.IsEarlyDeparture)
		})
	}
}

func TestEvaluateDay_SplitShiftPairsChronologically(t *testing.T) {
	resolved := standardDay()
	resolved.EntryTime = atPtr(8, 0)
	resolved.ExitTime = atPtr(17, 0)
	resolved.ExitTimeMorning = atPtr(13, 0)
	resolved.EntryTimeAfternoon = atPtr(14, 0)

	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 8, 5),
		punch("e2", clock.EventTypeExit, 13, 0),
		punch("e3", clock.EventTypeEntry, 14, 10),
		punch("e4", clock.EventTypeExit, 17, 5),
	}

	facts := EvaluateDay("emp-1", resolved, events)

	require.Len(t, facts.Segments, 2)
	assert.True(t, facts.IsComplete)
	// Lateness only looks at the first entry; the 14:10 afternoon return is
	// not checked against the afternoon boundary.
	assert.False(t, facts.IsLate)
	assert.False(t, facts.IsEarlyDeparture)
	assert.InDelta(t, 7.833, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_OpenSegmentCountsNoHours(t *testing.T) {
	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 9, 0),
		punch("e2", clock.EventTypeExit, 13, 0),
		punch("e3", clock.EventTypeEntry, 14, 0),
	}

	facts := EvaluateDay("emp-1", standardDay(), events)

	require.Len(t, facts.Segments, 2)
	assert.Nil(t, facts.Segments[1].Exit)
	assert.False(t, facts.IsComplete)
	assert.InDelta(t, 4.0, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_DuplicateEntryFoldsIntoOpenSegment(t *testing.T) {
	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 9, 0),
		punch("e2", clock.EventTypeEntry, 9, 5),
		punch("e3", clock.EventTypeExit, 18, 0),
	}

	facts := EvaluateDay("emp-1", standardDay(), events)

	require.Len(t, facts.Segments, 1)
	assert.Equal(t, "e1", facts.Segments[0].Entry.ID)
	assert.True(t, facts.IsComplete)
	assert.InDelta(t, 9.0, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_StrayExitIgnored(t *testing.T) {
	events := []clock.Event{
		punch("e1", clock.EventTypeExit, 8, 0),
		punch("e2", clock.EventTypeEntry, 9, 0),
		punch("e3", clock.EventTypeExit, 18, 0),
	}

	facts := EvaluateDay("emp-1", standardDay(), events)

	require.Len(t, facts.Segments, 1)
	assert.Equal(t, "e2", facts.Segments[0].Entry.ID)
	assert.True(t, facts.IsComplete)
	// The stray 08:00 exit is not the last exit, so no early departure.
	assert.False(t, facts.IsEarlyDeparture)
}

func TestEvaluateDay_OutOfOrderEventsAreSorted(t *testing.T) {
	events := []clock.Event{
		punch("e2", clock.EventTypeExit, 18, 0),
		punch("e1", clock.EventTypeEntry, 9, 0),
	}

	facts := EvaluateDay("emp-1", standardDay(), events)

	require.Len(t, facts.Segments, 1)
	assert.True(t, facts.IsComplete)
	assert.InDelta(t, 9.0, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_DayOffNeverFlaggedButHoursTracked(t *testing.T) {
	resolved := attendance.ResolvedDay{
		Date:   at(0, 0),
		DayOff: true,
		Source: attendance.SourceOverride,
	}
	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 11, 0),
		punch("e2", clock.EventTypeExit, 13, 0),
	}

	facts := EvaluateDay("emp-1", resolved, events)

	assert.False(t, facts.IsLate)
	assert.False(t, facts.IsEarlyDeparture)
	assert.InDelta(t, 2.0, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_FlexibleNeverFlagged(t *testing.T) {
	resolved := attendance.ResolvedDay{
		Date:     at(0, 0),
		Flexible: true,
		Source:   attendance.SourceShift,
	}
	events := []clock.Event{
		punch("e1", clock.EventTypeEntry, 12, 30),
		punch("e2", clock.EventTypeExit, 15, 0),
	}

	facts := EvaluateDay("emp-1", resolved, events)

	assert.False(t, facts.IsLate)
	assert.False(t, facts.IsEarlyDeparture)
	assert.InDelta(t, 2.5, facts.WorkedHours, 0.001)
}

func TestEvaluateDay_NoEvents(t *testing.T) {
	facts := EvaluateDay("emp-1", standardDay(), nil)

	assert.Empty(t, facts.Segments)
	assert.True(t, facts.IsComplete)
	assert.False(t, facts.IsLate)
	assert.False(t, facts.IsEarlyDeparture)
	assert.Zero(t, facts.WorkedHours)
}

func TestEvaluateDay_IsPure(t *testing.T) {
	events := []clock.Event{
		punch("e2", clock.EventTypeExit, 18, 0),
		punch("e1", clock.EventTypeEntry, 9, 0),
	}
	original := make([]clock.Event, len(events))
	copy(original, events)

	first := EvaluateDay("emp-1", standardDay(), events)
	second := EvaluateDay("emp-1", standardDay(), events)

	assert.Equal(t, first.IsLate, second.IsLate)
	assert.Equal(t, first.WorkedHours, second.WorkedHours)
	assert.Equal(t, original, events, "input slice must not be reordered")
}
