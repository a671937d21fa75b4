package attendance

import (
	"context"
)

// AttendanceService is the daily sign-in/sign-out session controller.
// Face verification happens before SignIn in the request flow; the
// controller itself never re-verifies.
type AttendanceService interface {
	// SignIn records the first sign-in of the day, or returns the existing
	// record unchanged when already signed in. Fails with ErrOnLeave when
	// the employee has approved leave covering today.
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)

	// OnLeaveToday reports whether approved leave covers the caller's
	// current day. Checked before face verification so a leave day is
	// reported as such regardless of the match outcome.
	OnLeaveToday(ctx context.Context) (bool, error)

	// SignOut records the sign-out time, idempotently. Fails with
	// ErrNotSignedIn when there is no signed-in record for today.
	SignOut(ctx context.Context) (AttendanceResponse, error)

	// GetToday returns today's record for the caller, or nil if none exists.
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// ListMine returns all of the caller's records, newest first.
	ListMine(ctx context.Context) ([]AttendanceResponse, error)

	// ListAll returns all employees' records for the given month (admin).
	ListAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// AutoSignOut closes every record still open today once the configured
	// cutoff has passed, stamping the cutoff as the sign-out time. Days
	// that already ended are never touched retroactively.
	AutoSignOut(ctx context.Context) (closed int, err error)
}
