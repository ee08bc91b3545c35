package config

import (
	"strings"

	"payfee/internal/models"
)

// Defaults for the checkout settings.
const (
	DefaultCurrency         = "USD"
	DefaultCurrencyDecimals = 2
)

var defaultGateways = []string{
	"bacs:Direct bank transfer",
	"cheque:Check payments",
	"cod:Cash on delivery",
}

// CheckoutConfig holds the store settings the checkout engine needs.
type CheckoutConfig struct {
	Currency         string
	CurrencyDecimals int32
	Gateways         []models.PaymentGateway
}

// LoadCheckoutConfig reads CURRENCY, CURRENCY_DECIMALS and PAYMENT_GATEWAYS.
// Gateways are listed as "id:Title" pairs; a bare id doubles as its title.
func LoadCheckoutConfig() CheckoutConfig {
	decimals := GetIntEnv("CURRENCY_DECIMALS", DefaultCurrencyDecimals)
	if decimals < 0 {
		decimals = DefaultCurrencyDecimals
	}
	return CheckoutConfig{
		Currency:         strings.ToUpper(GetEnv("CURRENCY", DefaultCurrency)),
		CurrencyDecimals: int32(decimals),
		Gateways:         ParseGateways(GetListEnv("PAYMENT_GATEWAYS", defaultGateways)),
	}
}

// ParseGateways turns "id:Title" entries into gateways, skipping duplicates.
func ParseGateways(entries []string) []models.PaymentGateway {
	seen := make(map[string]bool, len(entries))
	gateways := make([]models.PaymentGateway, 0, len(entries))
	for _, entry := range entries {
		id, title, found := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		title = strings.TrimSpace(title)
		if id == "" || seen[id] {
			continue
		}
		if !found || title == "" {
			title = id
		}
		seen[id] = true
		gateways = append(gateways, models.PaymentGateway{ID: id, Title: title})
	}
	return gateways
}
