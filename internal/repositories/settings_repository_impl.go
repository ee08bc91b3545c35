package repositories

import (
	"context"
	"errors"
	"fmt"

	"payfee/internal/models"

	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.FeeSettings, error) {
	var settings models.FeeSettings
	if err := r.db.WithContext(ctx).First(&settings, models.FeeSettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get payment fee settings: %w", err)
	}
	return &settings, nil
}

// Save inserts or replaces the single settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *models.FeeSettings) error {
	settings.ID = models.FeeSettingsID
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save payment fee settings: %w", err)
	}
	return nil
}
