package settings

import (
	"net/http"

	apperrors "payfee/internal/errors"
)

var ErrSettingsUnavailable = apperrors.New("SETTINGS_UNAVAILABLE", "payment fee settings are unavailable", http.StatusServiceUnavailable)
