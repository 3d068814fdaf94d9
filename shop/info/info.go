// Package info provides the static, stateless lookups exposed to the
// assistant: payment options, delivery estimates, and order status.
package info

import "fmt"

const defaultDeliveryTime = "7-10 business days"

var deliveryTimes = map[string]string{
	"UK":        "2-3 business days",
	"US":        "5-7 business days",
	"Canada":    "5-7 business days",
	"Australia": "7-10 business days",
}

var orderStatuses = map[string]string{
	"1": "Order placed, awaiting processing.",
	"2": "Order packed.",
	"3": "Order in Progress.",
	"4": "Order arrived to nearest hub.",
	"5": "Out for delivery.",
	"6": "Order delivered.",
}

const OrderStatusNotFound = "Order ID not found."

func PaymentOptions() string {
	return "We accept the following payment methods: Credit/Debit cards, PayPal, Bank Transfer."
}

func ThankYou() string {
	return "Thank you for shopping with us!"
}

// EstimatedDelivery maps a country to its delivery estimate. Unknown
// countries fall back to the default duration; this is a valid outcome, not
// an error.
func EstimatedDelivery(country string) string {
	if country == "" {
		country = "Canada"
	}
	duration, ok := deliveryTimes[country]
	if !ok {
		duration = defaultDeliveryTime
	}
	return fmt.Sprintf("Estimated delivery time to %s: %s", country, duration)
}

// OrderStatus returns the status line for an order id, or an explicit
// not-found value for unknown ids.
func OrderStatus(orderID string) string {
	status, ok := orderStatuses[orderID]
	if !ok {
		return OrderStatusNotFound
	}
	return status
}
