package catalog

import (
	"context"

	"payfee/internal/models"
)

// Service is the product catalog: products and their fee exclusion flags.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error)

	IsExcludedFromFee(ctx context.Context, productID uint) bool
	// ExclusionFlags resolves the flag for every id in one pass. Ids that are
	// not excluded (or unknown) map to false.
	ExclusionFlags(ctx context.Context, productIDs []uint) (map[uint]bool, error)
	SetExcluded(ctx context.Context, productID uint, excluded bool) (*models.Product, error)
}

// Cache is the subset of the cache service used for exclusion flags.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
