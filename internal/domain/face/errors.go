package face

import "errors"

// Face engine errors
var (
	ErrNoFaceDetected = errors.New("no face detected in the captured frame")
	ErrNotEnrolled    = errors.New("no face enrolled for this employee")
	ErrFaceMismatch   = errors.New("face does not match the enrolled reference")
)
