package employee

import "time"

type Employee struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	DepartmentID    string
	DesignationID   string
	ReportingHeadID *string
	IsAdmin         bool
	Status          bool
	FaceImagePath   *string
	FaceEnrolledAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined summary fields
	DepartmentName   *string
	DesignationTitle *string
}
