package settings

import (
	"time"

	"payfee/internal/models"
)

// UpdateInput is the admin settings form.
type UpdateInput struct {
	PercentageRate string   `json:"percentage_rate"`
	PaymentMethods []string `json:"payment_methods"`
}

// View is the admin settings page: the stored values plus every available
// gateway with its checkbox state.
type View struct {
	PercentageRate string                  `json:"percentage_rate"`
	PaymentMethods []string                `json:"payment_methods"`
	Gateways       []models.PaymentGateway `json:"gateways"`
	UpdatedBy      string                  `json:"updated_by,omitempty"`
	UpdatedAt      *time.Time              `json:"updated_at,omitempty"`
}
