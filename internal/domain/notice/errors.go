package notice

import "errors"

var (
	ErrNoticeNotFound = errors.New("late notice not found")
	ErrNoticeExists   = errors.New("a late notice already exists for this employee and date")
	// ErrNoAnomaly guards creation: a notice needs the evaluator to report
	// lateness or early departure for the day.
	ErrNoAnomaly         = errors.New("attendance for this date shows no lateness or early departure")
	ErrNotNoticeOwner    = errors.New("late notice does not belong to this employee")
	ErrEventDateMismatch = errors.New("clock event does not fall on the notice date")
)
