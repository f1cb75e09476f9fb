package response

import (
	"errors"
	"net/http"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/adjustment"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/notice"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/horariolabs/fichaje-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Department schedule not found")
	case errors.Is(err, schedule.ErrScheduleNameExists):
		Conflict(w, "A schedule with this name already exists in the department")
	case errors.Is(err, schedule.ErrOverrideNotFound):
		NotFound(w, "Day override not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Department shift not found")
	case errors.Is(err, schedule.ErrShiftNameExists):
		Conflict(w, "A shift with this name already exists in the department")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	// Clock domain errors
	case errors.Is(err, clock.ErrEventNotFound):
		NotFound(w, "Clock event not found")
	case errors.Is(err, clock.ErrNotEventOwner):
		Forbidden(w, "Clock event does not belong to this employee")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrRequestNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrRequestAlreadyResolved):
		Conflict(w, "Adjustment request has already been approved or rejected")
	case errors.Is(err, adjustment.ErrDuplicatePendingRequest):
		Conflict(w, "An open adjustment request already targets this clock event")
	case errors.Is(err, adjustment.ErrNotRequestOwner):
		Forbidden(w, "Clock event does not belong to the requesting employee")

	// Notice domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Late notice not found")
	case errors.Is(err, notice.ErrNoticeExists):
		Conflict(w, "A late notice already exists for this employee and date")
	case errors.Is(err, notice.ErrNoAnomaly):
		Conflict(w, "Attendance for this date shows no lateness or early departure")
	case errors.Is(err, notice.ErrEventDateMismatch):
		Conflict(w, "Clock event does not fall on the notice date")
	case errors.Is(err, notice.ErrNotNoticeOwner):
		Forbidden(w, "Late notice does not belong to this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
