package attendance

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// SignInOutcome discriminates the sign-in result instead of making callers
// inspect the response shape.
type SignInOutcome string

const (
	OutcomeCreated         SignInOutcome = "created"
	OutcomeAlreadySignedIn SignInOutcome = "already_signed_in"
)

type SignInRequest struct {
	// Live face descriptor captured client-side; verified by the face
	// engine before the session controller runs.
	Descriptor []float32 `json:"descriptor"`
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	DepartmentName   *string `json:"department_name,omitempty"`
	DesignationTitle *string `json:"designation_title,omitempty"`
	Date             string  `json:"date"`
	SignInTime       *string `json:"sign_in_time,omitempty"`
	SignOutTime      *string `json:"sign_out_time,omitempty"`
	Status           bool    `json:"status"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type SignInResponse struct {
	Outcome    SignInOutcome      `json:"outcome"`
	Attendance AttendanceResponse `json:"attendance"`
}

// ListFilter selects a contiguous month for the admin listing.
type ListFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the half-open [from, to) date range the filter selects.
func (f ListFilter) Range(loc *time.Location) (from, to time.Time) {
	from = time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
