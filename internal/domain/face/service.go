package face

import (
	"context"
)

// FaceService establishes and verifies the biometric reference used to gate
// attendance sign-in. Verification is a local, synchronous, single-attempt
// comparison; it never retries and never touches the attendance ledger.
type FaceService interface {
	// Enroll stores the captured descriptor and reference image for the
	// caller, replacing any prior enrollment. Fails with ErrNoFaceDetected
	// when the capture produced no descriptor.
	Enroll(ctx context.Context, req EnrollRequest) (EnrollResponse, error)

	// Verify compares a live descriptor against the caller's enrolled one.
	// Fails with ErrNotEnrolled when no reference exists and with
	// ErrNoFaceDetected when the live capture produced no descriptor.
	// A mismatch is not an error: the result carries accepted=false and
	// the measured distance.
	Verify(ctx context.Context, descriptor []float32) (MatchResult, error)
}
