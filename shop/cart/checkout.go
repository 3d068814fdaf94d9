package cart

import "github.com/shopspring/decimal"

type CheckoutStatus string

const (
	CheckoutEmpty     CheckoutStatus = "empty"
	CheckoutQuoted    CheckoutStatus = "quoted"
	CheckoutConfirmed CheckoutStatus = "confirmed"
)

// CheckoutResult carries the computed total; the total is zero only for the
// empty status, where it is never computed at all.
type CheckoutResult struct {
	Status CheckoutStatus
	Total  decimal.Decimal
}

// Checkout runs the two-phase checkout. Unconfirmed calls are a dry run: the
// total is computed and reported, the cart is untouched. A confirmed call on
// an unchanged cart reports the same total and then clears the cart, so a
// repeated confirmation cannot re-bill the same items.
func Checkout(c *Cart, confirmed bool) CheckoutResult {
	if c.Empty() {
		return CheckoutResult{Status: CheckoutEmpty, Total: decimal.Zero}
	}

	total := c.Total()
	if !confirmed {
		return CheckoutResult{Status: CheckoutQuoted, Total: total}
	}

	c.Clear()
	return CheckoutResult{Status: CheckoutConfirmed, Total: total}
}
