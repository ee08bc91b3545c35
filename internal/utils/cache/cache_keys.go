package cache

import (
	"fmt"
	"strings"
)

type EntityType string

const (
	EntitySettings EntityType = "settings"
	EntityProduct  EntityType = "product"
)

type KeyType string

const (
	KeyPaymentFee KeyType = "payment_fee"
	KeyExcluded   KeyType = "fee_excluded"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return strings.ToLower(fmt.Sprintf("%s:%s:%v", entity, keyType, value))
}

// FeeSettingsKey is where the current payment fee settings are cached.
func FeeSettingsKey() string {
	return GenerateKey(EntitySettings, KeyPaymentFee, "current")
}

// ProductExclusionKey caches one product's fee exclusion flag.
func ProductExclusionKey(productID uint) string {
	return GenerateKey(EntityProduct, KeyExcluded, productID)
}
