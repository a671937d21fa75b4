package face

import "time"

// DescriptorDim is the fixed length of a face descriptor vector.
// Descriptors are produced by the client-side embedding model; the
// backend only stores and compares them.
const DescriptorDim = 128

// FaceProfile is the enrolled biometric reference for an employee.
// The descriptor is the sole matching contract; the image path is a
// display-only reference kept for the profile screen.
type FaceProfile struct {
	EmployeeID string
	Descriptor []float32
	ImagePath  *string
	EnrolledAt *time.Time
}

// Enrolled reports whether a usable descriptor is stored.
func (p FaceProfile) Enrolled() bool {
	return len(p.Descriptor) == DescriptorDim
}
