package schedule

import (
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Department       string `json:"department"`
	Name             string `json:"name"`
	EntryTime        string `json:"entry_time"` // "HH:MM"
	ExitTime         string `json:"exit_time"`
	ToleranceMinutes *int   `json:"tolerance_minutes"`
	Flexible         bool   `json:"flexible"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}
	if r.ToleranceMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes is required",
		})
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name"`
	EntryTime        *string `json:"entry_time"`
	ExitTime         *string `json:"exit_time"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	Flexible         *bool   `json:"flexible"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.EntryTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_time",
				Message: "entry_time must be in HH:MM format",
			})
		}
	}
	if r.ExitTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "exit_time",
				Message: "exit_time must be in HH:MM format",
			})
		}
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PutOverrideRequest creates or replaces the override for one weekday.
type PutOverrideRequest struct {
	ScheduleID         string  `json:"-"`
	DayOfWeek          int     `json:"day_of_week"` // 1=Monday, ..., 7=Sunday
	EntryTime          *string `json:"entry_time"`
	ExitTime           *string `json:"exit_time"`
	ExitTimeMorning    *string `json:"exit_time_morning"`
	EntryTimeAfternoon *string `json:"entry_time_afternoon"`
	DayOff             bool    `json:"day_off"`
}

func (r *PutOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidWeekday(r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
		})
	}
	for field, value := range map[string]*string{
		"entry_time":           r.EntryTime,
		"exit_time":            r.ExitTime,
		"exit_time_morning":    r.ExitTimeMorning,
		"entry_time_afternoon": r.EntryTimeAfternoon,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidTimeOfDay(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}
	// A split day needs both sides of the midday break.
	if (r.ExitTimeMorning == nil) != (r.EntryTimeAfternoon == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time_morning",
			Message: "exit_time_morning and entry_time_afternoon must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateShiftRequest struct {
	Department         string  `json:"department"`
	Name               string  `json:"name"`
	EntryTime          string  `json:"entry_time"`
	ExitTime           string  `json:"exit_time"`
	ExitTimeMorning    *string `json:"exit_time_morning"`
	EntryTimeAfternoon *string `json:"entry_time_afternoon"`
	ToleranceMinutes   *int    `json:"tolerance_minutes"`
	Flexible           bool    `json:"flexible"`
	ActiveWeekdays     []int   `json:"active_weekdays"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}
	if r.ExitTimeMorning != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ExitTimeMorning); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "exit_time_morning",
				Message: "exit_time_morning must be in HH:MM format",
			})
		}
	}
	if r.EntryTimeAfternoon != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EntryTimeAfternoon); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_time_afternoon",
				Message: "entry_time_afternoon must be in HH:MM format",
			})
		}
	}
	if (r.ExitTimeMorning == nil) != (r.EntryTimeAfternoon == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time_morning",
			Message: "exit_time_morning and entry_time_afternoon must be provided together",
		})
	}
	if r.ToleranceMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes is required",
		})
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}
	if len(r.ActiveWeekdays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "active_weekdays",
			Message: "active_weekdays must contain at least one weekday",
		})
	}
	for _, d := range r.ActiveWeekdays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "active_weekdays",
				Message: "active_weekdays values must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name"`
	EntryTime        *string `json:"entry_time"`
	ExitTime         *string `json:"exit_time"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	Flexible         *bool   `json:"flexible"`
	ActiveWeekdays   []int   `json:"active_weekdays"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.EntryTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EntryTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_time",
				Message: "entry_time must be in HH:MM format",
			})
		}
	}
	if r.ExitTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ExitTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "exit_time",
				Message: "exit_time must be in HH:MM format",
			})
		}
	}
	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be a non-negative number",
		})
	}
	for _, d := range r.ActiveWeekdays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "active_weekdays",
				Message: "active_weekdays values must be between 1 (Monday) and 7 (Sunday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignShiftRequest assigns one shift to one employee over a date range.
// Dates whose weekday falls outside the shift's active weekdays are skipped.
type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	StartDate  string `json:"start_date"` // "YYYY-MM-DD"
	EndDate    string `json:"end_date"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID               string             `json:"id"`
	Department       string             `json:"department"`
	Name             string             `json:"name"`
	EntryTime        string             `json:"entry_time"`
	ExitTime         string             `json:"exit_time"`
	ToleranceMinutes int                `json:"tolerance_minutes"`
	Flexible         bool               `json:"flexible"`
	Overrides        []OverrideResponse `json:"overrides,omitempty"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

type OverrideResponse struct {
	ID                 string  `json:"id"`
	DayOfWeek          int     `json:"day_of_week"`
	EntryTime          *string `json:"entry_time,omitempty"`
	ExitTime           *string `json:"exit_time,omitempty"`
	ExitTimeMorning    *string `json:"exit_time_morning,omitempty"`
	EntryTimeAfternoon *string `json:"entry_time_afternoon,omitempty"`
	DayOff             bool    `json:"day_off"`
}

type ShiftResponse struct {
	ID                 string  `json:"id"`
	Department         string  `json:"department"`
	Name               string  `json:"name"`
	EntryTime          string  `json:"entry_time"`
	ExitTime           string  `json:"exit_time"`
	ExitTimeMorning    *string `json:"exit_time_morning,omitempty"`
	EntryTimeAfternoon *string `json:"entry_time_afternoon,omitempty"`
	ToleranceMinutes   int     `json:"tolerance_minutes"`
	Flexible           bool    `json:"flexible"`
	ActiveWeekdays     []int   `json:"active_weekdays"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type AssignShiftResponse struct {
	EmployeeID    string   `json:"employee_id"`
	ShiftID       string   `json:"shift_id"`
	AssignedCount int      `json:"assigned_count"`
	SkippedDates  []string `json:"skipped_dates,omitempty"`
}

// FormatTimeOfDay renders a stored wall-clock time back to "HH:MM".
func FormatTimeOfDay(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeOfDayPtr is the pointer-safe variant of FormatTimeOfDay.
func FormatTimeOfDayPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
