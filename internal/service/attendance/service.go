package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository

	location     *time.Location
	cutoffHour   int
	cutoffMinute int

	// now is swappable so tests can walk the clock across the cutoff.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	location *time.Location,
	cutoffHour, cutoffMinute int,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		location:       location,
		cutoffHour:     cutoffHour,
		cutoffMinute:   cutoffMinute,
		now:            time.Now,
	}
}

// WithClock replaces the service clock. Test use only.
func (a *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	a.now = now
	return a
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		EmployeeName:     att.EmployeeName,
		DepartmentName:   att.DepartmentName,
		DesignationTitle: att.DesignationTitle,
		Date:             att.Date.Format("2006-01-02"),
		SignInTime:       timePtrToString(att.SignInTime),
		SignOutTime:      timePtrToString(att.SignOutTime),
		Status:           att.Status,
		CreatedAt:        att.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        att.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// today returns midnight of the current local calendar day.
func (a *AttendanceServiceImpl) today() time.Time {
	nowLocal := a.now().In(a.location)
	return time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, a.location)
}

// SignIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SignIn(ctx context.Context, req attendance.SignInRequest) (attendance.SignInResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.SignInResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := a.today()

	onLeave, err := a.OnLeaveToday(ctx)
	if err != nil {
		return attendance.SignInResponse{}, err
	}
	if onLeave {
		return attendance.SignInResponse{}, attendance.ErrOnLeave
	}

	att, created, err := a.attendanceRepo.GetOrCreate(ctx, employeeID, today, nowUTC)
	if err != nil {
		return attendance.SignInResponse{}, fmt.Errorf("failed to record sign-in: %w", err)
	}

	outcome := attendance.OutcomeCreated
	if !created {
		outcome = attendance.OutcomeAlreadySignedIn
		// The row can exist without a sign-in time only if it was created
		// by an out-of-band path; backfill rather than fail.
		if att.SignInTime == nil {
			att, err = a.attendanceRepo.SetSignIn(ctx, att.ID, nowUTC)
			if err != nil {
				if err == attendance.ErrAttendanceNotFound {
					// A concurrent backfill won the guarded update; their
					// sign-in time stands.
					current, gErr := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
					if gErr == nil && current != nil && current.SignInTime != nil {
						return attendance.SignInResponse{
							Outcome:    attendance.OutcomeAlreadySignedIn,
							Attendance: toResponse(*current),
						}, nil
					}
				}
				return attendance.SignInResponse{}, fmt.Errorf("failed to backfill sign-in: %w", err)
			}
			outcome = attendance.OutcomeCreated
		}
	}

	return attendance.SignInResponse{
		Outcome:    outcome,
		Attendance: toResponse(att),
	}, nil
}

// OnLeaveToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) OnLeaveToday(ctx context.Context) (bool, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return false, err
	}

	onLeave, err := a.leaveRepo.HasApprovedLeave(ctx, employeeID, a.today())
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return onLeave, nil
}

// SignOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SignOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.now().UTC()
	today := a.today()

	att, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if att == nil || att.SignInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotSignedIn
	}

	// Repeated sign-out returns the existing record unchanged.
	if att.SignOutTime != nil {
		return toResponse(*att), nil
	}

	updated, err := a.attendanceRepo.SetSignOut(ctx, att.ID, nowUTC)
	if err != nil {
		if err == attendance.ErrAttendanceNotFound {
			// A concurrent sign-out (or the sweep) closed the row first;
			// the stamped time stands.
			current, gErr := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
			if gErr == nil && current != nil {
				return toResponse(*current), nil
			}
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record sign-out: %w", err)
	}

	return toResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	att, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, a.today())
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if att == nil {
		return nil, nil
	}

	resp := toResponse(*att)
	return &resp, nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	atts, err := a.attendanceRepo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := filter.Range(a.location)
	atts, err := a.attendanceRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// AutoSignOut implements attendance.AttendanceService.
// It only ever touches the current day: records left open on days that
// already ended stay open rather than being closed retroactively.
func (a *AttendanceServiceImpl) AutoSignOut(ctx context.Context) (int, error) {
	nowLocal := a.now().In(a.location)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, a.location)
	cutoff := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), a.cutoffHour, a.cutoffMinute, 0, 0, a.location)

	if nowLocal.Before(cutoff) {
		return 0, nil
	}

	open, err := a.attendanceRepo.ListOpenForDate(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list open attendances: %w", err)
	}

	cutoffUTC := cutoff.UTC()

	closed := 0
	for _, att := range open {
		// A sign-in after the cutoff stays open: stamping the cutoff on it
		// would put sign-out before sign-in.
		if att.SignInTime != nil && att.SignInTime.After(cutoffUTC) {
			continue
		}

		// Every auto-closed record gets the cutoff time, not the sweep time.
		if _, err := a.attendanceRepo.SetSignOut(ctx, att.ID, cutoffUTC); err != nil {
			if err == attendance.ErrAttendanceNotFound {
				// Signed out manually between list and update.
				continue
			}
			// One bad row must not stall the sweep for everyone else.
			slog.Error("failed to auto sign out attendance", "attendance_id", att.ID, "error", err)
			continue
		}
		closed++
	}

	return closed, nil
}
