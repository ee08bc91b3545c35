package fee

import (
	"slices"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate returns the payment fee owed for the given checkout, or false when
// no fee applies.
func Calculate(cfg Configuration, ctx Context, items []LineItem) (*Result, bool) {
	result, outcome := Evaluate(cfg, ctx, items)
	return result, outcome == OutcomeApplied
}

// Evaluate is Calculate with the reason a fee was or was not applied.
// The result is nil unless the outcome is OutcomeApplied.
func Evaluate(cfg Configuration, ctx Context, items []LineItem) (*Result, Outcome) {
	// Page checks first: endpoint pages recalculate an already placed order.
	if !ctx.IsCheckoutPage {
		return nil, OutcomeNotCheckout
	}
	if ctx.IsEndpointURL {
		return nil, OutcomeEndpointPage
	}
	if len(cfg.EligiblePaymentMethods) == 0 {
		return nil, OutcomeNoMethods
	}
	if !cfg.PercentageRate.IsPositive() {
		return nil, OutcomeZeroRate
	}
	if ctx.ChosenPaymentMethod == "" || !slices.Contains(cfg.EligiblePaymentMethods, ctx.ChosenPaymentMethod) {
		return nil, OutcomeMethodIneligible
	}

	base := EligibleSubtotal(items)
	if !base.IsPositive() {
		return nil, OutcomeEmptyBase
	}

	return &Result{
		Amount: base.Mul(cfg.PercentageRate).Div(hundred),
		Label:  Label,
	}, OutcomeApplied
}

// EligibleSubtotal sums the line subtotals of items not excluded from the fee.
func EligibleSubtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.ExcludedFromFee {
			continue
		}
		sum = sum.Add(item.LineSubtotal)
	}
	return sum
}

// Round rounds an amount to the currency's minor unit, half away from zero.
func Round(amount decimal.Decimal, places int32) decimal.Decimal {
	return amount.Round(places)
}
