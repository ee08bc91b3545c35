package repositories

import (
	"context"

	"payfee/internal/models"

	"github.com/google/uuid"
)

// CartRepository defines cart and order persistence
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	SaveItem(ctx context.Context, item *models.CartItem) error
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID uint) error
	SetPaymentMethod(ctx context.Context, cartID uuid.UUID, method string) error
	SetStatus(ctx context.Context, cartID uuid.UUID, status string) error

	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByCartID(ctx context.Context, cartID uuid.UUID) (*models.Order, error)

	// ExecuteInTransaction runs fn against a repository bound to one database transaction.
	ExecuteInTransaction(ctx context.Context, fn func(CartRepository) error) error
}
