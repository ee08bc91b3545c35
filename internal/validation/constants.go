package validation

const (
	// Payment fee settings
	MaxPercentageRate    = 100
	MaxRateDecimalPlaces = 4
	MaxGatewayIDLength   = 64

	// Cart limits
	MinItemQuantity = 1
	MaxItemQuantity = 1000

	// Product fields
	MaxSKULength  = 64
	MaxNameLength = 200
)
