package repositories

import (
	"context"

	"payfee/internal/models"
)

// ProductRepository defines the catalog operations the fee needs
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]models.Product, int64, error)

	// Exclusion flag operations
	SetExcluded(ctx context.Context, id uint, excluded bool) error
	ExcludedIDs(ctx context.Context, ids []uint) ([]uint, error)
}
