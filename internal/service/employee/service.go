package employee

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/face"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	faceRepo     face.FaceRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, faceRepo face.FaceRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		faceRepo:     faceRepo,
	}
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.ProfileResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	profile, err := s.faceRepo.GetProfile(ctx, employeeID)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to get face profile: %w", err)
	}

	return employee.ToProfileResponse(emp, profile.Enrolled()), nil
}
