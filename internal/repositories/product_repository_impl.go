package repositories

import (
	"context"
	"errors"
	"fmt"

	"payfee/internal/models"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var (
		products []models.Product
		total    int64
	)
	db := r.db.WithContext(ctx).Model(&models.Product{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Order("id").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

func (r *productRepository) SetExcluded(ctx context.Context, id uint, excluded bool) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("excluded_from_fee", excluded)
	if result.Error != nil {
		return fmt.Errorf("failed to update fee exclusion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ExcludedIDs returns the subset of ids flagged as excluded from the fee.
func (r *productRepository) ExcludedIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var excluded []uint
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id IN ? AND excluded_from_fee = ?", ids, true).
		Pluck("id", &excluded).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load fee exclusions: %w", err)
	}
	return excluded, nil
}
