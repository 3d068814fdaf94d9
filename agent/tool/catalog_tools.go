package tool

import (
	contractx "github.com/kittipos/shoptalk/agent/contract"
	catalogx "github.com/kittipos/shoptalk/shop/catalog"
)

func (g *Gateway) execCatalogSearch(args map[string]any) contractx.ToolResult {
	description, _, err := stringArg(args, "description")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	minPrice, err := priceArg(args, "min_price")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}
	maxPrice, err := priceArg(args, "max_price")
	if err != nil {
		return contractx.ToolResult{Error: err.Error()}
	}

	var minQuantity *int
	if qty, ok, err := intArg(args, "min_quantity"); err != nil {
		return contractx.ToolResult{Error: err.Error()}
	} else if ok {
		minQuantity = &qty
	}

	matches := g.catalog.Search(catalogx.Filter{
		Description: description,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		MinQuantity: minQuantity,
	})

	return contractx.ToolResult{Result: searchOutput{Products: matches}}
}

type searchOutput struct {
	Products []catalogx.Product `json:"products"`
}
