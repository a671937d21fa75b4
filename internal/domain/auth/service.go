package auth

import "context"

// AuthService resolves a verified caller identity for the rest of the API.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
