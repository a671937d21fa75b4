package attendance

import "errors"

// Attendance domain errors
var (
	ErrOnLeave     = errors.New("you are on approved leave today")
	ErrNotSignedIn = errors.New("you have not signed in yet")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
