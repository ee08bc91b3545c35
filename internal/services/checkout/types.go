package checkout

import "payfee/internal/services/fee"

type AddItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type RecalculateInput struct {
	PaymentMethod string `json:"payment_method"`
	Page          Page   `json:"page"`
}

type PlaceOrderInput struct {
	PaymentMethod string `json:"payment_method"`
}

// outcomeExclusionsUnavailable is recorded when exclusion flags could not be
// loaded and the fee was skipped.
const outcomeExclusionsUnavailable fee.Outcome = "exclusions_unavailable"
