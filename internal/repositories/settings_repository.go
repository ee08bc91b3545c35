package repositories

import (
	"context"

	"payfee/internal/models"
)

// SettingsRepository reads and writes the payment fee settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.FeeSettings, error)
	Save(ctx context.Context, settings *models.FeeSettings) error
}
