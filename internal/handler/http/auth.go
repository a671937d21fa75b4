package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("RefreshToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var logoutReq auth.RefreshTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&logoutReq); err != nil {
		slog.Error("Logout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.Logout(r.Context(), logoutReq.RefreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}
