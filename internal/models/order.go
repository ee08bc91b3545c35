package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	CartID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"cart_id"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	Currency      string          `gorm:"not null" json:"currency"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	FeeTotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"fee_total"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Fees          []OrderFee      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"fees"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderFee is a fee line charged on top of the order subtotal.
type OrderFee struct {
	ID      uint            `gorm:"primarykey" json:"-"`
	OrderID uuid.UUID       `gorm:"type:uuid;index;not null" json:"-"`
	Label   string          `gorm:"not null" json:"label"`
	Amount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Taxable bool            `gorm:"not null" json:"taxable"`
}
