package catalog

import (
	"context"
	"errors"
	"strings"

	"payfee/internal/models"
	"payfee/internal/repositories"
	cachekeys "payfee/internal/utils/cache"
	"payfee/internal/validation"

	"github.com/rs/zerolog/log"
)

type service struct {
	repo  repositories.ProductRepository
	cache Cache
}

// NewService creates the catalog service. cache may be nil.
func NewService(repo repositories.ProductRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	input.SKU = strings.TrimSpace(input.SKU)
	input.Name = strings.TrimSpace(input.Name)

	v := validation.New()
	v.Product(input.SKU, input.Name, input.Price)
	if err := v.Err(); err != nil {
		return nil, err
	}

	product := &models.Product{
		SKU:             input.SKU,
		Name:            input.Name,
		Price:           input.Price,
		ExcludedFromFee: input.ExcludedFromFee,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.storeFlag(ctx, product.ID, product.ExcludedFromFee)
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *service) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) IsExcludedFromFee(ctx context.Context, productID uint) bool {
	flags, err := s.ExclusionFlags(ctx, []uint{productID})
	if err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("fee exclusion lookup failed")
		return false
	}
	return flags[productID]
}

func (s *service) ExclusionFlags(ctx context.Context, productIDs []uint) (map[uint]bool, error) {
	flags := make(map[uint]bool, len(productIDs))
	var missing []uint

	for _, id := range productIDs {
		if _, done := flags[id]; done {
			continue
		}
		if excluded, ok := s.cachedFlag(ctx, id); ok {
			flags[id] = excluded
			continue
		}
		flags[id] = false
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return flags, nil
	}

	excludedIDs, err := s.repo.ExcludedIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, id := range excludedIDs {
		flags[id] = true
	}
	for _, id := range missing {
		s.storeFlag(ctx, id, flags[id])
	}
	return flags, nil
}

func (s *service) SetExcluded(ctx context.Context, productID uint, excluded bool) (*models.Product, error) {
	if err := s.repo.SetExcluded(ctx, productID, excluded); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cachekeys.ProductExclusionKey(productID)); err != nil {
			log.Warn().Err(err).Uint("product_id", productID).Msg("exclusion cache invalidation failed")
		}
	}

	log.Info().Uint("product_id", productID).Bool("excluded", excluded).Msg("product fee exclusion updated")
	return s.GetProduct(ctx, productID)
}

func (s *service) cachedFlag(ctx context.Context, id uint) (bool, bool) {
	if s.cache == nil {
		return false, false
	}
	var excluded bool
	found, err := s.cache.Get(ctx, cachekeys.ProductExclusionKey(id), &excluded)
	if err != nil {
		log.Warn().Err(err).Uint("product_id", id).Msg("exclusion cache read failed")
		return false, false
	}
	return excluded, found
}

func (s *service) storeFlag(ctx context.Context, id uint, excluded bool) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cachekeys.ProductExclusionKey(id), excluded); err != nil {
		log.Warn().Err(err).Uint("product_id", id).Msg("exclusion cache write failed")
	}
}
