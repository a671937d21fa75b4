package employee

import "context"

// EmployeeService exposes the caller's own directory entry.
type EmployeeService interface {
	// GetMyProfile returns the caller's profile with enrollment state.
	GetMyProfile(ctx context.Context) (ProfileResponse, error)
}
