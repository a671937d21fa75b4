package face

import (
	"context"
	"time"
)

// FaceRepository persists the enrolled face reference, embedded 1:1 in the
// employee directory.
type FaceRepository interface {
	// GetProfile returns the stored face profile for the employee.
	// A profile with no descriptor means the employee never enrolled.
	GetProfile(ctx context.Context, employeeID string) (FaceProfile, error)

	// SaveProfile stores descriptor and reference image path, replacing
	// any prior enrollment.
	SaveProfile(ctx context.Context, employeeID string, descriptor []float32, imagePath string, enrolledAt time.Time) error
}
