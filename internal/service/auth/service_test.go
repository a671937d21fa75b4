package auth

import (
	"context"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // by ID
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newTestService(t *testing.T, active bool) (*AuthServiceImpl, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			Name:         "Jane Doe",
			Email:        "jane@example.com",
			PasswordHash: string(hash),
			IsAdmin:      false,
			Status:       active,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestLoginSuccess(t *testing.T) {
	svc, jwtService := newTestService(t, true)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	employeeID, err := jwtService.ParseRefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveEmployee(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestService(t, true)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := newTestService(t, true)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	svc, _ := newTestService(t, true)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t, true)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
