package auth

import (
	"net/http"

	apperrors "payfee/internal/errors"
)

var (
	ErrInvalidCredentials = apperrors.New("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized)
	ErrInvalidToken       = apperrors.New("INVALID_TOKEN", "invalid token", http.StatusUnauthorized)
	ErrNotConfigured      = apperrors.New("ADMIN_NOT_CONFIGURED", "admin login is not configured", http.StatusServiceUnavailable)
)
