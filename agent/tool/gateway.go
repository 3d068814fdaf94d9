// Package tool exposes the shop operations as model-callable tools: openai
// function definitions plus an executor dispatching by tool name. Tool
// failures are reported inside the result payload and never cross the tool
// boundary as Go errors.
package tool

import (
	"context"

	"github.com/openai/openai-go"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
	catalogx "github.com/kittipos/shoptalk/shop/catalog"
)

const (
	ToolCatalogSearch    = "catalog.search"
	ToolCartAdd          = "cart.add"
	ToolCartRemove       = "cart.remove"
	ToolCartView         = "cart.view"
	ToolCheckout         = "checkout.start"
	ToolPaymentOptions   = "payment.options"
	ToolDeliveryEstimate = "delivery.estimate"
	ToolOrderStatus      = "order.status"
)

// Gateway implements contract.ToolGateway over the loaded catalog. Cart state
// comes from the session passed to Execute, never from the gateway itself.
type Gateway struct {
	catalog *catalogx.Catalog
}

func NewGateway(catalog *catalogx.Catalog) *Gateway {
	return &Gateway{catalog: catalog}
}

func (g *Gateway) Definitions() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolCatalogSearch,
				Description: openai.String("Search the product catalog by description, price range, and available quantity. All filters are optional."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{
							"type":        "string",
							"description": "Name or part of the product description, matched case-insensitively.",
						},
						"min_price": map[string]any{
							"type":        "number",
							"description": "Minimum unit price, inclusive.",
						},
						"max_price": map[string]any{
							"type":        "number",
							"description": "Maximum unit price, inclusive.",
						},
						"min_quantity": map[string]any{
							"type":        "integer",
							"description": "Minimum available quantity, inclusive.",
						},
					},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolCartAdd,
				Description: openai.String("Add a quantity of a product to the shopping cart by stock code."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"stock_code": map[string]any{
							"type":        "string",
							"description": "Stock code of the product, as returned by catalog.search.",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"description": "Number of items to add. Must be positive.",
						},
					},
					"required": []string{"stock_code", "quantity"},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolCartRemove,
				Description: openai.String("Remove a quantity of a product from the shopping cart by stock code."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"stock_code": map[string]any{
							"type":        "string",
							"description": "Stock code of the cart line to remove from.",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"description": "Number of items to remove. Must be positive.",
						},
					},
					"required": []string{"stock_code", "quantity"},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolCartView,
				Description: openai.String("Show the current contents of the shopping cart."),
				Parameters: openai.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolCheckout,
				Description: openai.String("Start or confirm checkout. Without confirmation this only quotes the total; with confirmed=true the payment is processed."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"confirmed": map[string]any{
							"type":        "boolean",
							"description": "Set true only after the user explicitly confirmed the quoted total.",
						},
					},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolPaymentOptions,
				Description: openai.String("List the accepted payment methods."),
				Parameters: openai.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolDeliveryEstimate,
				Description: openai.String("Estimate delivery time for a destination country."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"country": map[string]any{
							"type":        "string",
							"description": "Destination country name.",
						},
					},
				},
			},
		},
		{
			Function: openai.FunctionDefinitionParam{
				Name:        ToolOrderStatus,
				Description: openai.String("Look up the status of an existing order by its id."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"order_id": map[string]any{
							"type":        "string",
							"description": "Order identifier.",
						},
					},
					"required": []string{"order_id"},
				},
			},
		},
	}
}

func (g *Gateway) Execute(
	ctx context.Context,
	session *statex.SessionState,
	reqs []contractx.ToolRequest,
) []contractx.ToolResult {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		res := g.executeOne(ctx, session, req)
		res.ID = req.ID
		res.Tool = req.Tool
		results = append(results, res)
	}
	return results
}

func (g *Gateway) executeOne(
	_ context.Context,
	session *statex.SessionState,
	req contractx.ToolRequest,
) contractx.ToolResult {
	switch req.Tool {
	case ToolCatalogSearch:
		return g.execCatalogSearch(req.Args)
	case ToolCartAdd:
		return g.execCartAdd(session, req.Args)
	case ToolCartRemove:
		return execCartRemove(session, req.Args)
	case ToolCartView:
		return execCartView(session)
	case ToolCheckout:
		return execCheckout(session, req.Args)
	case ToolPaymentOptions:
		return execPaymentOptions()
	case ToolDeliveryEstimate:
		return execDeliveryEstimate(req.Args)
	case ToolOrderStatus:
		return execOrderStatus(req.Args)
	default:
		return contractx.ToolResult{Error: "unknown tool: " + req.Tool}
	}
}
