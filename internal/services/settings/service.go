package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payfee/internal/models"
	"payfee/internal/repositories"
	"payfee/internal/services/fee"
	cachekeys "payfee/internal/utils/cache"
	"payfee/internal/validation"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type service struct {
	repo     repositories.SettingsRepository
	cache    Cache
	gateways []models.PaymentGateway
}

// NewService creates the settings store. cache may be nil.
func NewService(repo repositories.SettingsRepository, cache Cache, gateways []models.PaymentGateway) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{
		repo:     repo,
		cache:    cache,
		gateways: gateways,
	}
}

func (s *service) GetPercentageRate(ctx context.Context) decimal.Decimal {
	return s.Configuration(ctx).PercentageRate
}

func (s *service) GetEligiblePaymentMethods(ctx context.Context) []string {
	return s.Configuration(ctx).EligiblePaymentMethods
}

func (s *service) Configuration(ctx context.Context) fee.Configuration {
	stored, err := s.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("payment fee settings unavailable, charging no fee")
		return fee.Configuration{}
	}
	if stored == nil {
		return fee.Configuration{}
	}

	rate, err := parseRate(stored.PercentageRate)
	if err != nil {
		log.Warn().Err(err).Str("percentage_rate", stored.PercentageRate).Msg("malformed payment fee rate, charging no fee")
		return fee.Configuration{}
	}

	methods := make([]string, 0, len(stored.PaymentMethods))
	for _, m := range stored.PaymentMethods {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, m)
		}
	}

	return fee.Configuration{
		PercentageRate:         rate,
		EligiblePaymentMethods: methods,
	}
}

func (s *service) GetSettings(ctx context.Context) (*View, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}
	return s.view(stored), nil
}

func (s *service) Update(ctx context.Context, input UpdateInput, actor string) (*View, error) {
	rate, methods, err := validation.FeeSettings(input.PercentageRate, input.PaymentMethods, s.gateways)
	if err != nil {
		return nil, err
	}

	stored := &models.FeeSettings{
		PercentageRate: rate.String(),
		PaymentMethods: methods,
		UpdatedBy:      actor,
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	log.Info().
		Str("actor", actor).
		Str("percentage_rate", stored.PercentageRate).
		Strs("payment_methods", methods).
		Msg("payment fee settings updated")
	return s.view(stored), nil
}

func (s *service) Gateways(ctx context.Context) ([]models.PaymentGateway, error) {
	view, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return view.Gateways, nil
}

// load returns the stored settings, nil when none were saved yet.
func (s *service) load(ctx context.Context) (*models.FeeSettings, error) {
	key := cachekeys.FeeSettingsKey()
	if s.cache != nil {
		var cached models.FeeSettings
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("settings cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stored); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("settings cache write failed")
		}
	}
	return stored, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cachekeys.FeeSettingsKey()); err != nil {
		log.Warn().Err(err).Msg("settings cache invalidation failed")
	}
}

func (s *service) view(stored *models.FeeSettings) *View {
	v := &View{PercentageRate: "0", PaymentMethods: []string{}}
	if stored != nil {
		v.PercentageRate = stored.PercentageRate
		v.PaymentMethods = append(v.PaymentMethods, stored.PaymentMethods...)
		v.UpdatedBy = stored.UpdatedBy
		if !stored.UpdatedAt.IsZero() {
			updated := stored.UpdatedAt
			v.UpdatedAt = &updated
		}
	}

	selected := make(map[string]bool, len(v.PaymentMethods))
	for _, m := range v.PaymentMethods {
		selected[m] = true
	}
	v.Gateways = make([]models.PaymentGateway, 0, len(s.gateways))
	for _, g := range s.gateways {
		g.Selected = selected[g.ID]
		v.Gateways = append(v.Gateways, g)
	}
	return v
}

// parseRate accepts what an administrator could have stored. Blank is zero.
func parseRate(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative rate %s", raw)
	}
	return rate, nil
}
