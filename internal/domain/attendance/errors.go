package attendance

import "errors"

// Missing configuration is not an error: days without a resolvable schedule
// come back as unscheduled. These cover the inputs around that.
var (
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)
