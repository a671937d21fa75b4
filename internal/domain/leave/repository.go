package leave

import (
	"context"
	"time"
)

// LeaveRepository is the single predicate the attendance subsystem consults.
// Leave requests are owned by the leave workflow, not by attendance.
type LeaveRepository interface {
	// HasApprovedLeave reports whether an approved leave request covers
	// the given calendar date for the employee.
	HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
