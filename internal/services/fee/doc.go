/*
Package fee computes the percentage payment fee added to a checkout total.

The calculator is a pure function over three inputs:

  - Configuration: the percentage rate and the payment methods that trigger the fee
  - Context: the buyer's chosen payment method and the page the recalculation runs on
  - LineItem: cart lines annotated with the per-product exclusion flag

Usage:

	result, ok := fee.Calculate(cfg, fee.Context{
	    ChosenPaymentMethod: "cod",
	    IsCheckoutPage:      true,
	}, items)
	if ok {
	    // attach result.Amount to the order total
	}

The calculator never rounds. Callers round to the currency's minor unit at the
point the fee is displayed or charged (see Round).

Nothing in this package performs I/O. Configuration and exclusion flags are
resolved by the caller before Calculate is invoked.
*/
package fee
