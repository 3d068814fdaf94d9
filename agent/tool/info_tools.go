package tool

import (
	contractx "github.com/kittipos/shoptalk/agent/contract"
	"github.com/kittipos/shoptalk/shop/info"
)

func execPaymentOptions() contractx.ToolResult {
	return contractx.ToolResult{Result: info.PaymentOptions()}
}

func execDeliveryEstimate(args map[string]any) contractx.ToolResult {
	country, _, err := stringArg(args, "country")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	return contractx.ToolResult{Result: info.EstimatedDelivery(country)}
}

func execOrderStatus(args map[string]any) contractx.ToolResult {
	orderID, ok, err := stringArg(args, "order_id")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	if !ok {
		return contractx.ToolResult{Error: "order_id is required"}
	}
	return contractx.ToolResult{Result: info.OrderStatus(orderID)}
}
