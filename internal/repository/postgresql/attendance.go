package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, sign_in_time, sign_out_time, status, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.SignInTime, &att.SignOutTime, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// GetOrCreate implements attendance.AttendanceRepository.
// The UNIQUE (employee_id, date) constraint is the serialization point:
// concurrent callers race on the insert, exactly one wins, and the losers
// fall through to fetching the winner's row.
func (a *attendanceRepository) GetOrCreate(ctx context.Context, employeeID string, date time.Time, signInAt time.Time) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	insertQuery := `
		INSERT INTO attendances (employee_id, date, sign_in_time, status)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT ON CONSTRAINT attendances_employee_date_key DO NOTHING
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, insertQuery, employeeID, date, signInAt))
	if err == nil {
		return att, true, nil
	}
	if err != pgx.ErrNoRows {
		return attendance.Attendance{}, false, fmt.Errorf("failed to create attendance: %w", err)
	}

	// Conflict: another writer holds the row for this day.
	selectQuery := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	att, err = scanAttendance(q.QueryRow(ctx, selectQuery, employeeID, date))
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to get attendance after conflict: %w", err)
	}

	return att, false, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &att, nil
}

// SetSignIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetSignIn(ctx context.Context, id string, signInAt time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET sign_in_time = $2, status = TRUE, updated_at = NOW()
		WHERE id = $1 AND sign_in_time IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, signInAt))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set sign-in time: %w", err)
	}

	return att, nil
}

// SetSignOut implements attendance.AttendanceRepository.
// The sign_out_time IS NULL guard keeps the first sign-out authoritative.
func (a *attendanceRepository) SetSignOut(ctx context.Context, id string, signOutAt time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET sign_out_time = $2, updated_at = NOW()
		WHERE id = $1 AND sign_out_time IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, signOutAt))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set sign-out time: %w", err)
	}

	return att, nil
}

// ListForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.sign_in_time, a.sign_out_time,
		       a.status, a.created_at, a.updated_at,
		       e.name, d.name, g.title
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		JOIN departments d ON d.id = e.department_id
		JOIN designations g ON g.id = e.designation_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.date DESC, e.name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.SignInTime, &att.SignOutTime, &att.Status,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.DepartmentName, &att.DesignationTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// ListOpenForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenForDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date = $1
		  AND sign_in_time IS NOT NULL
		  AND sign_out_time IS NULL
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate open attendances: %w", err)
	}

	return attendances, nil
}
