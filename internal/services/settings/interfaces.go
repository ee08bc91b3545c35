package settings

import (
	"context"

	"payfee/internal/models"
	"payfee/internal/services/fee"

	"github.com/shopspring/decimal"
)

// Service is the settings store the checkout reads fee configuration from.
type Service interface {
	GetPercentageRate(ctx context.Context) decimal.Decimal
	GetEligiblePaymentMethods(ctx context.Context) []string
	// Configuration never fails: unreadable or malformed settings yield the
	// zero configuration, which charges no fee.
	Configuration(ctx context.Context) fee.Configuration

	// Admin operations
	GetSettings(ctx context.Context) (*View, error)
	Update(ctx context.Context, input UpdateInput, actor string) (*View, error)
	Gateways(ctx context.Context) ([]models.PaymentGateway, error)
}

// Cache is the subset of the cache service used for settings.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
