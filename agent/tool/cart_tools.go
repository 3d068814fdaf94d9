package tool

import (
	"fmt"
	"strings"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
	cartx "github.com/kittipos/shoptalk/shop/cart"
	"github.com/kittipos/shoptalk/shop/info"
)

func (g *Gateway) execCartAdd(session *statex.SessionState, args map[string]any) contractx.ToolResult {
	stockCode, ok, err := stringArg(args, "stock_code")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	if !ok {
		return contractx.ToolResult{Error: "stock_code is required"}
	}
	quantity, ok, err := intArg(args, "quantity")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	if !ok {
		return contractx.ToolResult{Error: "quantity is required"}
	}

	product, found := g.catalog.FindByStockCode(stockCode)
	if !found {
		return contractx.ToolResult{
			Result: fmt.Sprintf("No product with stock code %s in the catalog.", stockCode),
		}
	}

	line, err := session.EnsureCart().Add(product, quantity)
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}

	return contractx.ToolResult{
		Result: fmt.Sprintf("Added %d of %s to cart.", quantity, line.Description),
	}
}

func execCartRemove(session *statex.SessionState, args map[string]any) contractx.ToolResult {
	stockCode, ok, err := stringArg(args, "stock_code")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	if !ok {
		return contractx.ToolResult{Error: "stock_code is required"}
	}
	quantity, ok, err := intArg(args, "quantity")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	if !ok {
		return contractx.ToolResult{Error: "quantity is required"}
	}

	removal, err := session.EnsureCart().Remove(stockCode, quantity)
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}

	switch removal.Status {
	case cartx.RemovalNotFound:
		return contractx.ToolResult{Result: "Item not found in cart."}
	case cartx.RemovalDecremented:
		return contractx.ToolResult{
			Result: fmt.Sprintf("Removed %d of %s from cart.", quantity, removal.Description),
		}
	case cartx.RemovalDeleted:
		return contractx.ToolResult{
			Result: fmt.Sprintf("Removed %s from cart.", removal.Description),
		}
	case cartx.RemovalInsufficient:
		return contractx.ToolResult{
			Result: fmt.Sprintf("Cannot remove %d; only %d available.", quantity, removal.Held),
		}
	default:
		return contractx.ToolResult{Error: fmt.Sprintf("unexpected removal status %q", removal.Status)}
	}
}

func execCartView(session *statex.SessionState) contractx.ToolResult {
	c := session.EnsureCart()
	if c.Empty() {
		return contractx.ToolResult{Result: "Cart is empty."}
	}

	var b strings.Builder
	b.WriteString("Your cart contains:")
	for _, entry := range c.Items() {
		fmt.Fprintf(&b, "\n%s: %d @ $%s each", entry.Description, entry.Quantity, entry.UnitPrice.StringFixed(2))
	}
	return contractx.ToolResult{Result: b.String()}
}

func execCheckout(session *statex.SessionState, args map[string]any) contractx.ToolResult {
	confirmed, err := boolArg(args, "confirmed")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}

	res := cartx.Checkout(session.EnsureCart(), confirmed)
	switch res.Status {
	case cartx.CheckoutEmpty:
		return contractx.ToolResult{
			Result: "Your cart is empty. Please add some items before proceeding to checkout.",
		}
	case cartx.CheckoutQuoted:
		return contractx.ToolResult{
			Result: fmt.Sprintf(
				"Checkout initiated. The total price is $%s. Do you want to proceed with the payment? (yes/no)",
				res.Total.StringFixed(2),
			),
		}
	case cartx.CheckoutConfirmed:
		return contractx.ToolResult{
			Result: fmt.Sprintf(
				"Confirmed! Processing payment for $%s. %s",
				res.Total.StringFixed(2),
				info.ThankYou(),
			),
		}
	default:
		return contractx.ToolResult{Error: fmt.Sprintf("unexpected checkout status %q", res.Status)}
	}
}
