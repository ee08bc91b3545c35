package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetListEnv(t *testing.T) {
	t.Setenv("PAYFEE_TEST_LIST", " cod, ,bacs ,")
	assert.Equal(t, []string{"cod", "bacs"}, GetListEnv("PAYFEE_TEST_LIST", nil))

	t.Setenv("PAYFEE_TEST_LIST", "  ")
	assert.Equal(t, []string{"x"}, GetListEnv("PAYFEE_TEST_LIST", []string{"x"}))
}

func TestGetIntEnv_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("PAYFEE_TEST_INT", "two")
	assert.Equal(t, 2, GetIntEnv("PAYFEE_TEST_INT", 2))

	t.Setenv("PAYFEE_TEST_INT", "3")
	assert.Equal(t, 3, GetIntEnv("PAYFEE_TEST_INT", 2))
}

func TestParseGateways(t *testing.T) {
	gateways := ParseGateways([]string{"cod:Cash on delivery", "stripe", "cod:Again", ":nothing", "bacs: "})

	assert.Len(t, gateways, 3)
	assert.Equal(t, "cod", gateways[0].ID)
	assert.Equal(t, "Cash on delivery", gateways[0].Title)
	assert.Equal(t, "stripe", gateways[1].Title)
	assert.Equal(t, "bacs", gateways[2].Title)
}

func TestLoadCheckoutConfig(t *testing.T) {
	t.Setenv("CURRENCY", "eur")
	t.Setenv("CURRENCY_DECIMALS", "-1")
	t.Setenv("PAYMENT_GATEWAYS", "")

	cfg := LoadCheckoutConfig()
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, int32(DefaultCurrencyDecimals), cfg.CurrencyDecimals)
	assert.Len(t, cfg.Gateways, 3)
}
