package attendance

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
)

type ResolvedDayResponse struct {
	Date               string  `json:"date"`
	DayOff             bool    `json:"day_off"`
	Flexible           bool    `json:"flexible"`
	EntryTime          *string `json:"entry_time,omitempty"`
	ExitTime           *string `json:"exit_time,omitempty"`
	ExitTimeMorning    *string `json:"exit_time_morning,omitempty"`
	EntryTimeAfternoon *string `json:"entry_time_afternoon,omitempty"`
	SplitShift         bool    `json:"split_shift"`
	ToleranceMinutes   int     `json:"tolerance_minutes"`
	Source             string  `json:"source"`
	ShiftID            *string `json:"shift_id,omitempty"`
	ScheduleID         *string `json:"schedule_id,omitempty"`
}

type SegmentResponse struct {
	EntryEventID string  `json:"entry_event_id"`
	EntryTime    string  `json:"entry_time"`
	ExitEventID  *string `json:"exit_event_id,omitempty"`
	ExitTime     *string `json:"exit_time,omitempty"`
	Open         bool    `json:"open"`
}

type DayFactsResponse struct {
	EmployeeID       string                `json:"employee_id"`
	Date             string                `json:"date"`
	Resolved         ResolvedDayResponse   `json:"resolved_schedule"`
	Events           []clock.EventResponse `json:"events"`
	Segments         []SegmentResponse     `json:"segments"`
	IsLate           bool                  `json:"is_late"`
	IsEarlyDeparture bool                  `json:"is_early_departure"`
	IsComplete       bool                  `json:"is_complete"`
	WorkedHours      float64               `json:"worked_hours"`
}

// MapResolvedDayToResponse converts a ResolvedDay to its wire shape.
func MapResolvedDayToResponse(r ResolvedDay) ResolvedDayResponse {
	return ResolvedDayResponse{
		Date:               r.Date.Format("2006-01-02"),
		DayOff:             r.DayOff,
		Flexible:           r.Flexible,
		EntryTime:          formatInstantPtr(r.EntryTime),
		ExitTime:           formatInstantPtr(r.ExitTime),
		ExitTimeMorning:    formatInstantPtr(r.ExitTimeMorning),
		EntryTimeAfternoon: formatInstantPtr(r.EntryTimeAfternoon),
		SplitShift:         r.Split(),
		ToleranceMinutes:   r.ToleranceMinutes,
		Source:             string(r.Source),
		ShiftID:            r.ShiftID,
		ScheduleID:         r.ScheduleID,
	}
}

func formatInstantPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
