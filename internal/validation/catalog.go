package validation

import "github.com/shopspring/decimal"

// Product validates a product before it is stored.
func (v *Validator) Product(sku, name string, price decimal.Decimal) {
	v.Required("sku", sku)
	v.MaxLength("sku", sku, MaxSKULength)
	v.Required("name", name)
	v.MaxLength("name", name, MaxNameLength)
	v.Check(!price.IsNegative(), "price", "must not be negative")
}

// Quantity validates a cart line quantity.
func (v *Validator) Quantity(field string, qty int) {
	v.IntRange(field, qty, MinItemQuantity, MaxItemQuantity)
}
