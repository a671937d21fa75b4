package response

import (
	"errors"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is inactive")

	// Face engine errors
	case errors.Is(err, face.ErrNoFaceDetected):
		UnprocessableEntity(w, "NO_FACE_DETECTED", "No face detected in the captured frame")
	case errors.Is(err, face.ErrNotEnrolled):
		Conflict(w, "FACE_NOT_ENROLLED", "No face enrolled for this employee")
	case errors.Is(err, face.ErrFaceMismatch):
		Unauthorized(w, "Face does not match the enrolled reference")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOnLeave):
		Conflict(w, "ON_LEAVE", "You are on approved leave today")
	case errors.Is(err, attendance.ErrNotSignedIn):
		Conflict(w, "NOT_SIGNED_IN", "You have not signed in yet")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
