package checkout

import "payfee/internal/services/fee"

// Page identifies where in the storefront a recalculation was requested.
type Page string

const (
	PageCart          Page = "cart"
	PageCheckout      Page = "checkout"
	PageOrderPay      Page = "order-pay"
	PageOrderReceived Page = "order-received"
	PageViewOrder     Page = "view-order"
)

// IsCheckout reports whether the page belongs to the checkout flow.
func (p Page) IsCheckout() bool {
	return p == PageCheckout || p.IsEndpoint()
}

// IsEndpoint reports whether the page is a checkout endpoint for an order
// that already exists.
func (p Page) IsEndpoint() bool {
	switch p {
	case PageOrderPay, PageOrderReceived, PageViewOrder:
		return true
	}
	return false
}

// FeeContext builds the calculator context for a chosen payment method.
func (p Page) FeeContext(paymentMethod string) fee.Context {
	return fee.Context{
		ChosenPaymentMethod: paymentMethod,
		IsCheckoutPage:      p.IsCheckout(),
		IsEndpointURL:       p.IsEndpoint(),
	}
}
