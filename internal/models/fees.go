package models

import (
	"time"

	"github.com/lib/pq"
)

// FeeSettingsID is the primary key of the single settings row.
const FeeSettingsID uint = 1

// FeeSettings stores the payment fee options entered by an administrator.
// PercentageRate is kept as entered and parsed when read, so a bad value
// written outside the admin form degrades to "no fee" instead of failing checkout.
type FeeSettings struct {
	ID             uint           `gorm:"primarykey" json:"-"`
	PercentageRate string         `gorm:"not null;default:'0'" json:"percentage_rate"`
	PaymentMethods pq.StringArray `gorm:"type:text[]" json:"payment_methods"`
	UpdatedBy      string         `json:"updated_by,omitempty"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (FeeSettings) TableName() string {
	return "payment_fee_settings"
}

// PaymentGateway is a payment method the store can offer at checkout.
type PaymentGateway struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}
