package validation

import (
	"fmt"
	"strings"

	"payfee/internal/models"

	"github.com/shopspring/decimal"
)

// PercentageRate parses an administrator-entered rate. Blank means zero.
func (v *Validator) PercentageRate(field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		v.AddError(field, "must be a decimal number")
		return decimal.Zero
	}

	v.Check(!rate.IsNegative(), field, "must not be negative")
	v.Check(rate.LessThanOrEqual(decimal.NewFromInt(MaxPercentageRate)), field,
		fmt.Sprintf("must not be more than %d", MaxPercentageRate))
	v.Check(rate.Equal(rate.Truncate(MaxRateDecimalPlaces)), field,
		fmt.Sprintf("must have at most %d decimal places", MaxRateDecimalPlaces))
	return rate
}

// PaymentMethods checks that every id names a known gateway and returns the
// ids trimmed, deduplicated and in submitted order.
func (v *Validator) PaymentMethods(field string, ids []string, gateways []models.PaymentGateway) []string {
	known := make(map[string]bool, len(gateways))
	for _, g := range gateways {
		known[g.ID] = true
	}

	seen := make(map[string]bool, len(ids))
	methods := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		if len(id) > MaxGatewayIDLength || !known[id] {
			v.AddError(field, fmt.Sprintf("unknown payment gateway %q", id))
			continue
		}
		seen[id] = true
		methods = append(methods, id)
	}
	return methods
}

// FeeSettings validates the settings form and returns the normalized values.
func FeeSettings(rate string, methods []string, gateways []models.PaymentGateway) (decimal.Decimal, []string, error) {
	v := New()
	parsed := v.PercentageRate("percentage_rate", rate)
	normalized := v.PaymentMethods("payment_methods", methods, gateways)
	if err := v.Err(); err != nil {
		return decimal.Zero, nil, err
	}
	return parsed, normalized, nil
}
