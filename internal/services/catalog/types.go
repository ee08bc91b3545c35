package catalog

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	ExcludedFromFee bool            `json:"excluded_from_fee"`
}
