package fee

import "github.com/shopspring/decimal"

// Label is the name of the fee line attached to the order.
const Label = "Payment Fee"

// Configuration holds the administrator settings for one calculation.
type Configuration struct {
	PercentageRate         decimal.Decimal
	EligiblePaymentMethods []string
}

// Context describes the checkout request that triggered the calculation.
type Context struct {
	ChosenPaymentMethod string
	IsCheckoutPage      bool
	// IsEndpointURL is true on pay-for-order, order-received and similar pages.
	IsEndpointURL bool
}

// LineItem is one distinct product in the cart.
type LineItem struct {
	ProductID       uint
	LineSubtotal    decimal.Decimal
	ExcludedFromFee bool
}

// Result is the fee owed for a checkout.
type Result struct {
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

// Outcome records why a calculation produced or skipped a fee.
type Outcome string

const (
	OutcomeApplied          Outcome = "applied"
	OutcomeNotCheckout      Outcome = "not_checkout"
	OutcomeEndpointPage     Outcome = "endpoint_page"
	OutcomeNoMethods        Outcome = "no_methods"
	OutcomeZeroRate         Outcome = "zero_rate"
	OutcomeMethodIneligible Outcome = "method_ineligible"
	OutcomeEmptyBase        Outcome = "empty_base"
)
