package attendance

import (
	"testing"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func todPtr(hour, minute int) *time.Time {
	t := tod(hour, minute)
	return &t
}

func strPtr(s string) *string {
	return &s
}

// Monday 2025-06-02 in UTC.
func testMonday() time.Time {
	return time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
}

func baseSchedule() schedule.DepartmentSchedule {
	return schedule.DepartmentSchedule{
		ID:               "sched-1",
		Department:       "engineering",
		Name:             "general",
		EntryTime:        tod(9, 0),
		ExitTime:         tod(18, 0),
		ToleranceMinutes: 10,
	}
}

func TestResolveDay_ShiftBeatsSchedule(t *testing.T) {
	shift := schedule.DepartmentShift{
		ID:               "shift-1",
		EntryTime:        tod(7, 0),
		ExitTime:         tod(15, 0),
		ToleranceMinutes: 5,
		ActiveWeekdays:   []int{1, 2, 3, 4, 5},
	}
	resolved := ResolveDay(ResolveInput{
		Date:       testMonday(),
		Location:   time.UTC,
		Assignment: &schedule.ShiftAssignment{ID: "a-1", ShiftID: "shift-1"},
		Shift:      &shift,
		Schedules:  []schedule.DepartmentSchedule{baseSchedule()},
	})

	assert.Equal(t, attendance.SourceShift, resolved.Source)
	require.NotNil(t, resolved.EntryTime)
	require.NotNil(t, resolved.ExitTime)
	assert.Equal(t, 7, resolved.EntryTime.Hour())
	assert.Equal(t, 15, resolved.ExitTime.Hour())
	assert.Equal(t, 5, resolved.ToleranceMinutes)
	assert.False(t, resolved.DayOff)
}

func TestResolveDay_FlexibleShiftHasNoTimes(t *testing.T) {
	shift := schedule.DepartmentShift{ID: "shift-1", Flexible: true}
	resolved := ResolveDay(ResolveInput{
		Date:       testMonday(),
		Location:   time.UTC,
		Assignment: &schedule.ShiftAssignment{ShiftID: "shift-1"},
		Shift:      &shift,
		Schedules:  []schedule.DepartmentSchedule{baseSchedule()},
	})

	assert.Equal(t, attendance.SourceShift, resolved.Source)
	assert.True(t, resolved.Flexible)
	assert.Nil(t, resolved.EntryTime)
	assert.Nil(t, resolved.ExitTime)
}

func TestResolveDay_DanglingShiftFallsBackToSchedule(t *testing.T) {
	resolved := ResolveDay(ResolveInput{
		Date:       testMonday(),
		Location:   time.UTC,
		Assignment: &schedule.ShiftAssignment{ShiftID: "deleted-shift"},
		Shift:      nil,
		Schedules:  []schedule.DepartmentSchedule{baseSchedule()},
	})

	assert.Equal(t, attendance.SourceSchedule, resolved.Source)
	require.NotNil(t, resolved.EntryTime)
	assert.Equal(t, 9, resolved.EntryTime.Hour())
}

func TestResolveDay_PicksDesignatedScheduleByName(t *testing.T) {
	early := baseSchedule()
	late := schedule.DepartmentSchedule{
		ID:         "sched-2",
		Department: "engineering",
		Name:       "night",
		EntryTime:  tod(14, 0),
		ExitTime:   tod(22, 0),
	}

	resolved := ResolveDay(ResolveInput{
		Date:         testMonday(),
		Location:     time.UTC,
		Schedules:    []schedule.DepartmentSchedule{early, late},
		ScheduleName: strPtr("night"),
	})

	require.NotNil(t, resolved.ScheduleID)
	assert.Equal(t, "sched-2", *resolved.ScheduleID)
	require.NotNil(t, resolved.EntryTime)
	assert.Equal(t, 14, resolved.EntryTime.Hour())
}

func TestResolveDay_UnknownScheduleNameFallsBackToFirst(t *testing.T) {
	resolved := ResolveDay(ResolveInput{
		Date:         testMonday(),
		Location:     time.UTC,
		Schedules:    []schedule.DepartmentSchedule{baseSchedule()},
		ScheduleName: strPtr("no-such-schedule"),
	})

	require.NotNil(t, resolved.ScheduleID)
	assert.Equal(t, "sched-1", *resolved.ScheduleID)
}

func TestResolveDay_DayOffOverrideWins(t *testing.T) {
	sched := baseSchedule()
	sched.Overrides = []schedule.DayOverride{
		{ScheduleID: sched.ID, DayOfWeek: 1, DayOff: true, EntryTime: todPtr(8, 0)},
	}

	resolved := ResolveDay(ResolveInput{
		Date:      testMonday(),
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{sched},
	})

	assert.Equal(t, attendance.SourceOverride, resolved.Source)
	assert.True(t, resolved.DayOff)
	assert.Nil(t, resolved.EntryTime)
	assert.Nil(t, resolved.ExitTime)
}

func TestResolveDay_OverrideFallsBackFieldByField(t *testing.T) {
	sched := baseSchedule()
	sched.Overrides = []schedule.DayOverride{
		{ScheduleID: sched.ID, DayOfWeek: 1, EntryTime: todPtr(10, 0)},
	}

	resolved := ResolveDay(ResolveInput{
		Date:      testMonday(),
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{sched},
	})

	assert.Equal(t, attendance.SourceOverride, resolved.Source)
	require.NotNil(t, resolved.EntryTime)
	require.NotNil(t, resolved.ExitTime)
	assert.Equal(t, 10, resolved.EntryTime.Hour())
	// Exit not overridden, inherited from the schedule.
	assert.Equal(t, 18, resolved.ExitTime.Hour())
	assert.Equal(t, 10, resolved.ToleranceMinutes)
}

func TestResolveDay_SplitOverride(t *testing.T) {
	sched := baseSchedule()
	sched.Overrides = []schedule.DayOverride{
		{
			ScheduleID:         sched.ID,
			DayOfWeek:          1,
			ExitTimeMorning:    todPtr(13, 0),
			EntryTimeAfternoon: todPtr(14, 0),
		},
	}

	resolved := ResolveDay(ResolveInput{
		Date:      testMonday(),
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{sched},
	})

	assert.True(t, resolved.Split())
	require.NotNil(t, resolved.ExitTimeMorning)
	require.NotNil(t, resolved.EntryTimeAfternoon)
	assert.Equal(t, 13, resolved.ExitTimeMorning.Hour())
	assert.Equal(t, 14, resolved.EntryTimeAfternoon.Hour())
}

func TestResolveDay_WeekendDefaultsToDayOff(t *testing.T) {
	saturday := time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)

	resolved := ResolveDay(ResolveInput{
		Date:      saturday,
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{baseSchedule()},
	})

	assert.Equal(t, attendance.SourceSchedule, resolved.Source)
	assert.True(t, resolved.DayOff)
}

func TestResolveDay_WeekendOverrideEnablesWork(t *testing.T) {
	saturday := time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)
	sched := baseSchedule()
	sched.Overrides = []schedule.DayOverride{
		{ScheduleID: sched.ID, DayOfWeek: 6, EntryTime: todPtr(10, 0), ExitTime: todPtr(14, 0)},
	}

	resolved := ResolveDay(ResolveInput{
		Date:      saturday,
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{sched},
	})

	assert.False(t, resolved.DayOff)
	require.NotNil(t, resolved.EntryTime)
	assert.Equal(t, 10, resolved.EntryTime.Hour())
}

func TestResolveDay_NoConfigurationResolvesToUnscheduled(t *testing.T) {
	resolved := ResolveDay(ResolveInput{
		Date:     testMonday(),
		Location: time.UTC,
	})

	assert.Equal(t, attendance.SourceNone, resolved.Source)
	assert.True(t, resolved.DayOff)
	assert.Nil(t, resolved.ShiftID)
	assert.Nil(t, resolved.ScheduleID)
}

func TestResolveDay_FlexibleScheduleIgnoresOverrides(t *testing.T) {
	sched := baseSchedule()
	sched.Flexible = true
	sched.Overrides = []schedule.DayOverride{
		{ScheduleID: sched.ID, DayOfWeek: 1, DayOff: true},
	}

	resolved := ResolveDay(ResolveInput{
		Date:      testMonday(),
		Location:  time.UTC,
		Schedules: []schedule.DepartmentSchedule{sched},
	})

	assert.True(t, resolved.Flexible)
	assert.False(t, resolved.DayOff)
	assert.Equal(t, attendance.SourceSchedule, resolved.Source)
}

func TestResolveDay_TimesAnchoredInDepartmentTimezone(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, madrid)
	resolved := ResolveDay(ResolveInput{
		Date:      monday,
		Location:  madrid,
		Schedules: []schedule.DepartmentSchedule{baseSchedule()},
	})

	require.NotNil(t, resolved.EntryTime)
	assert.Equal(t, madrid, resolved.EntryTime.Location())
	assert.Equal(t, 9, resolved.EntryTime.Hour())
	// Madrid is UTC+2 in June.
	assert.Equal(t, 7, resolved.EntryTime.UTC().Hour())
}
