package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Filter describes optional search constraints. A nil/empty field imposes no
// constraint; supplied fields are AND-ed.
type Filter struct {
	Description string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinQuantity *int
}

// Search returns the products satisfying every supplied constraint, in
// catalog order, capped at the configured max result count. An empty result
// means "no match", not an error.
func (c *Catalog) Search(f Filter) []Product {
	needle := strings.ToLower(strings.TrimSpace(f.Description))

	matches := make([]Product, 0, c.maxResults)
	for _, p := range c.products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if f.MinPrice != nil && p.UnitPrice.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.UnitPrice.GreaterThan(*f.MaxPrice) {
			continue
		}
		if f.MinQuantity != nil && p.Quantity < *f.MinQuantity {
			continue
		}

		matches = append(matches, p)
		if len(matches) >= c.maxResults {
			break
		}
	}
	return matches
}
