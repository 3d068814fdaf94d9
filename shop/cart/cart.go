// Package cart implements the session-scoped shopping cart. A Cart is owned
// by exactly one session; it is serialized as part of the session state and
// must never be shared as a process-wide singleton.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kittipos/shoptalk/shop/catalog"
)

// ErrInvalidQuantity rejects non-positive quantities before they can corrupt
// cart state.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// LineItem is one cart entry. Description and unit price are copied from the
// product at the time of first insertion. Quantity is always > 0; an entry
// reduced to zero is deleted, not retained.
type LineItem struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Cart maps stock codes to line items. Codes records insertion order so that
// views and totals are deterministic. Fields are exported for JSON
// round-tripping through the session store; mutate only through methods.
type Cart struct {
	Lines map[string]*LineItem `json:"lines,omitempty"`
	Codes []string             `json:"codes,omitempty"`
}

func New() *Cart {
	return &Cart{Lines: make(map[string]*LineItem, 4)}
}

func (c *Cart) ensure() {
	if c.Lines == nil {
		c.Lines = make(map[string]*LineItem, 4)
	}
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Lines) == 0
}

// Add puts quantity units of p into the cart, merging into an existing line
// for the same stock code. The existing line keeps its original description
// and unit price.
func (c *Cart) Add(p catalog.Product, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	c.ensure()

	if line, ok := c.Lines[p.StockCode]; ok {
		line.Quantity += quantity
		return *line, nil
	}

	line := &LineItem{
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Quantity:    quantity,
	}
	c.Lines[p.StockCode] = line
	c.Codes = append(c.Codes, p.StockCode)
	return *line, nil
}

type RemovalStatus string

const (
	RemovalNotFound     RemovalStatus = "not_found"
	RemovalDecremented  RemovalStatus = "decremented"
	RemovalDeleted      RemovalStatus = "deleted"
	RemovalInsufficient RemovalStatus = "insufficient"
)

// Removal reports the outcome of a Remove call. NotFound and Insufficient are
// valid outcomes, not errors; state is untouched for both.
type Removal struct {
	Status      RemovalStatus
	Description string
	Held        int
	Remaining   int
}

// Remove takes quantity units of the identified line out of the cart.
// Removing exactly the held quantity deletes the line; the description is
// captured before deletion so the outcome can still reference it.
func (c *Cart) Remove(stockCode string, quantity int) (Removal, error) {
	if quantity <= 0 {
		return Removal{}, ErrInvalidQuantity
	}
	c.ensure()

	line, ok := c.Lines[stockCode]
	if !ok {
		return Removal{Status: RemovalNotFound}, nil
	}

	switch {
	case quantity < line.Quantity:
		line.Quantity -= quantity
		return Removal{
			Status:      RemovalDecremented,
			Description: line.Description,
			Held:        line.Quantity + quantity,
			Remaining:   line.Quantity,
		}, nil
	case quantity == line.Quantity:
		description := line.Description
		held := line.Quantity
		delete(c.Lines, stockCode)
		c.dropCode(stockCode)
		return Removal{
			Status:      RemovalDeleted,
			Description: description,
			Held:        held,
		}, nil
	default:
		return Removal{
			Status:      RemovalInsufficient,
			Description: line.Description,
			Held:        line.Quantity,
			Remaining:   line.Quantity,
		}, nil
	}
}

func (c *Cart) dropCode(stockCode string) {
	for i, code := range c.Codes {
		if code == stockCode {
			c.Codes = append(c.Codes[:i], c.Codes[i+1:]...)
			return
		}
	}
}

// Entry pairs a line item with its stock code for ordered views.
type Entry struct {
	StockCode string
	LineItem
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []Entry {
	if c.Empty() {
		return nil
	}
	entries := make([]Entry, 0, len(c.Codes))
	for _, code := range c.Codes {
		line, ok := c.Lines[code]
		if !ok {
			continue
		}
		entries = append(entries, Entry{StockCode: code, LineItem: *line})
	}
	return entries
}

// Total sums unit price times quantity over all line items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, code := range c.Codes {
		if line, ok := c.Lines[code]; ok {
			total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return total
}

func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.Lines = make(map[string]*LineItem, 4)
	c.Codes = nil
}
