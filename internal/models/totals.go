package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeLine is a fee attached to checkout totals.
type FeeLine struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Taxable bool            `json:"taxable"`
}

// CheckoutTotals is what the storefront renders after a recalculation.
type CheckoutTotals struct {
	CartID        uuid.UUID       `json:"cart_id"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Fees          []FeeLine       `json:"fees"`
	FeeTotal      decimal.Decimal `json:"fee_total"`
	Total         decimal.Decimal `json:"total"`
}
