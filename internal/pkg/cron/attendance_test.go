package cron

import (
	"context"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	sweeps int
	closed int
}

func (s *stubAttendanceService) AutoSignOut(ctx context.Context) (int, error) {
	s.sweeps++
	return s.closed, nil
}

func TestAutoSignOutJobRuns(t *testing.T) {
	svc := &stubAttendanceService{closed: 3}
	jobs := NewAttendanceJobs(svc, time.Minute)

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())
	assert.Equal(t, 1, svc.sweeps)

	scheduler.RunOnce(context.Background())
	assert.Equal(t, 2, svc.sweeps)
}

func TestSchedulerStartStop(t *testing.T) {
	svc := &stubAttendanceService{}
	jobs := NewAttendanceJobs(svc, time.Hour)

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	// Jobs run once immediately on start.
	scheduler.Start()
	scheduler.Stop()

	assert.Equal(t, 1, svc.sweeps)
}
