package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same error for unknown email and wrong password.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.Status {
		return auth.LoginResponse{}, employee.ErrEmployeeInactive
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RefreshResponse{}, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	employeeID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.Status {
		return auth.RefreshResponse{}, employee.ErrEmployeeInactive
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(refreshToken)
	return nil
}
