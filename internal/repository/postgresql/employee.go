package postgresql

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.name, e.email, e.password_hash,
		       e.department_id, e.designation_id, e.reporting_head_id,
		       e.is_admin, e.status, e.face_image_path, e.face_enrolled_at,
		       e.created_at, e.updated_at,
		       d.name, g.title
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN designations g ON g.id = e.designation_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash,
		&emp.DepartmentID, &emp.DesignationID, &emp.ReportingHeadID,
		&emp.IsAdmin, &emp.Status, &emp.FaceImagePath, &emp.FaceEnrolledAt,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.DesignationTitle,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.name, e.email, e.password_hash,
		       e.department_id, e.designation_id, e.reporting_head_id,
		       e.is_admin, e.status, e.face_image_path, e.face_enrolled_at,
		       e.created_at, e.updated_at,
		       d.name, g.title
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN designations g ON g.id = e.designation_id
		WHERE e.email = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash,
		&emp.DepartmentID, &emp.DesignationID, &emp.ReportingHeadID,
		&emp.IsAdmin, &emp.Status, &emp.FaceImagePath, &emp.FaceEnrolledAt,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.DesignationTitle,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}
