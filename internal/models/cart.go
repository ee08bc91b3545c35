package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart statuses
const (
	CartStatusOpen    = "open"
	CartStatusOrdered = "ordered"
)

type Cart struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Status              string     `gorm:"not null;default:'open'" json:"status"`
	Currency            string     `gorm:"not null" json:"currency"`
	ChosenPaymentMethod string     `json:"chosen_payment_method"`
	Items               []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = CartStatusOpen
	}
	return nil
}

// CartItem is one distinct product in a cart.
type CartItem struct {
	ID           uint            `gorm:"primarykey" json:"-"`
	CartID       uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_cart_product;not null" json:"-"`
	ProductID    uint            `gorm:"uniqueIndex:idx_cart_product;not null" json:"product_id"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	LineSubtotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_subtotal"`
}
