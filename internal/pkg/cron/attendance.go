package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
)

// AttendanceJobs runs the server-side sweep that closes sessions left open
// past the daily cutoff. The service decides whether the cutoff has passed;
// the sweep just runs often enough that no open session outlives it by more
// than one interval.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	sweepInterval     time.Duration
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, sweepInterval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		sweepInterval:     sweepInterval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_sign_out", j.sweepInterval, j.AutoSignOut)
}

func (j *AttendanceJobs) AutoSignOut(ctx context.Context) error {
	closed, err := j.attendanceService.AutoSignOut(ctx)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Cron: Auto signed out open attendances", "count", closed)
	}

	return nil
}
