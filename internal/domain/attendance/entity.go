package attendance

import (
	"time"
)

// Attendance is the ledger row: one per (employee, calendar day).
// Date carries the local calendar day; sign times are stored UTC.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	SignInTime  *time.Time
	SignOutTime *time.Time
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined summary fields for admin listings
	EmployeeName     *string
	DepartmentName   *string
	DesignationTitle *string
}

// Open reports whether the row has a sign-in and no sign-out yet.
func (a Attendance) Open() bool {
	return a.SignInTime != nil && a.SignOutTime == nil
}
