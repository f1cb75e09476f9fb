package attendance

import "context"

// FactsService resolves schedules and derives attendance facts. Both reads
// are side-effect-free and recomputed on every call; approved adjustments
// are therefore reflected on the next read without invalidation bookkeeping.
type FactsService interface {
	// GetResolvedSchedule returns the expected schedule for an employee on a
	// local calendar date ("YYYY-MM-DD")
	GetResolvedSchedule(ctx context.Context, employeeID, date string) (ResolvedDayResponse, error)

	// GetDayFacts evaluates the employee's clock events for a date against
	// the resolved schedule
	GetDayFacts(ctx context.Context, employeeID, date string) (DayFactsResponse, error)
}
