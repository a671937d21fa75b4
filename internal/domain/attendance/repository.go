package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for the attendance ledger.
// The ledger guarantees at most one row per (employee, calendar day);
// GetOrCreate is the atomic get-or-create the session controller relies on.
type AttendanceRepository interface {
	// GetOrCreate inserts the row for (employeeID, date) with the given
	// sign-in time, or returns the existing row when another writer got
	// there first. created reports which of the two happened.
	GetOrCreate(ctx context.Context, employeeID string, date time.Time, signInAt time.Time) (att Attendance, created bool, err error)

	// GetByEmployeeAndDate returns the row for the given day, or nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetSignIn backfills a sign-in time on a row that has none.
	// Existing sign-in times are never overwritten.
	SetSignIn(ctx context.Context, id string, signInAt time.Time) (Attendance, error)

	// SetSignOut records the sign-out time. Existing sign-out times are
	// never overwritten.
	SetSignOut(ctx context.Context, id string, signOutAt time.Time) (Attendance, error)

	// ListForEmployee returns all rows for one employee, newest first.
	ListForEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListRange returns all employees' rows with date in [from, to),
	// joined with employee/department/designation summaries.
	ListRange(ctx context.Context, from, to time.Time) ([]Attendance, error)

	// ListOpenForDate returns rows for the given day that are signed in
	// but not yet signed out.
	ListOpenForDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
