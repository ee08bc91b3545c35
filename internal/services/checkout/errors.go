package checkout

import (
	"net/http"

	apperrors "payfee/internal/errors"
)

// Service errors
var (
	ErrCartNotFound          = apperrors.New("CART_NOT_FOUND", "cart not found", http.StatusNotFound)
	ErrCartClosed            = apperrors.New("CART_CLOSED", "cart has already been ordered", http.StatusConflict)
	ErrCartEmpty             = apperrors.New("CART_EMPTY", "cart is empty", http.StatusUnprocessableEntity)
	ErrItemNotFound          = apperrors.New("ITEM_NOT_FOUND", "product is not in the cart", http.StatusNotFound)
	ErrProductNotFound       = apperrors.New("PRODUCT_NOT_FOUND", "product not found", http.StatusNotFound)
	ErrPaymentMethodRequired = apperrors.New("PAYMENT_METHOD_REQUIRED", "payment method is required", http.StatusUnprocessableEntity)
	ErrOrderNotFound         = apperrors.New("ORDER_NOT_FOUND", "no order was placed from this cart", http.StatusNotFound)
	ErrUnknownPaymentMethod  = apperrors.New("UNKNOWN_PAYMENT_METHOD", "payment method is not available", http.StatusUnprocessableEntity)
)
