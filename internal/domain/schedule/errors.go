package schedule

import "errors"

var (
	// Department Schedule Errors
	ErrScheduleNotFound   = errors.New("department schedule not found")
	ErrScheduleNameExists = errors.New("a schedule with this name already exists in the department")

	// Day Override Errors
	ErrOverrideNotFound = errors.New("day override not found")

	// Department Shift Errors
	ErrShiftNotFound   = errors.New("department shift not found")
	ErrShiftNameExists = errors.New("a shift with this name already exists in the department")

	// Shift Assignment Errors
	ErrAssignmentNotFound = errors.New("shift assignment not found")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
