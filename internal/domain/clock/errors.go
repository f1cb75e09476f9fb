package clock

import "errors"

var (
	ErrEventNotFound = errors.New("clock event not found")
	ErrNotEventOwner = errors.New("clock event does not belong to this employee")
)
