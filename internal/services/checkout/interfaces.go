package checkout

import (
	"context"

	"payfee/internal/models"
	"payfee/internal/services/fee"

	"github.com/google/uuid"
)

// Service is the cart/checkout engine. It resolves fee inputs, invokes the
// fee calculator and attaches the result to the order total.
type Service interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, cartID uuid.UUID, input AddItemInput) (*models.Cart, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID uint) (*models.Cart, error)

	// Recalculate answers the storefront's refresh request, typically sent
	// whenever the buyer changes the payment method.
	Recalculate(ctx context.Context, cartID uuid.UUID, input RecalculateInput) (*models.CheckoutTotals, error)
	PlaceOrder(ctx context.Context, cartID uuid.UUID, input PlaceOrderInput) (*models.Order, error)
	// GetOrder returns the order placed from the cart, with its fee lines as charged.
	GetOrder(ctx context.Context, cartID uuid.UUID) (*models.Order, error)
}

// SettingsStore supplies the fee configuration.
type SettingsStore interface {
	Configuration(ctx context.Context) fee.Configuration
}

// ProductCatalog supplies prices and fee exclusion flags.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ExclusionFlags(ctx context.Context, productIDs []uint) (map[uint]bool, error)
}

// MetricsCollector records fee calculation outcomes.
type MetricsCollector interface {
	RecordCalculation(outcome string)
	RecordFee(method string, amount float64)
}
