package adjustment

import "errors"

var (
	ErrRequestNotFound = errors.New("adjustment request not found")
	// ErrRequestAlreadyResolved guards the terminal states: no transition
	// leaves APPROVED or REJECTED.
	ErrRequestAlreadyResolved  = errors.New("adjustment request has already been approved or rejected")
	ErrDuplicatePendingRequest = errors.New("an open adjustment request already targets this clock event")
	ErrNotRequestOwner         = errors.New("clock event does not belong to the requesting employee")
)
