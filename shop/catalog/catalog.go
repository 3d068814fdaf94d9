// Package catalog holds the in-memory product list and its filtered search.
// The catalog is read-only after load.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrLoad marks any failure to read or validate the persisted product list.
var ErrLoad = errors.New("catalog load failed")

const DefaultMaxResults = 2

type Config struct {
	Path       string `envconfig:"PATH" split_words:"true" default:"products.json"`
	MaxResults int    `envconfig:"MAX_RESULTS" split_words:"true" default:"2"`
}

// Product is one purchasable item. Field names follow the cleaned CSV export.
type Product struct {
	StockCode   string          `json:"StockCode"`
	Description string          `json:"Description"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Quantity    int             `json:"Quantity"`
}

type Catalog struct {
	products   []Product
	maxResults int
}

// New builds a catalog from an already-validated product slice. Used by
// tests and by Load.
func New(products []Product, maxResults int) *Catalog {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Catalog{
		products:   append([]Product(nil), products...),
		maxResults: maxResults,
	}
}

// Load reads the JSON product export and validates every record. A missing
// or malformed file, or an invalid record, fails with an error wrapping
// ErrLoad; load failures are never encoded as an empty catalog.
func Load(cfg Config) (*Catalog, error) {
	raw, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, cfg.Path, err)
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoad, cfg.Path, err)
	}

	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrLoad, i, err)
		}
	}

	return New(products, cfg.MaxResults), nil
}

func validateProduct(p Product) error {
	if strings.TrimSpace(p.StockCode) == "" {
		return errors.New("stock code is empty")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("description is empty")
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price %s is negative", p.UnitPrice)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("quantity %d is negative", p.Quantity)
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByStockCode returns the first product with the given stock code. The
// loader does not deduplicate codes; first match wins, matching catalog order.
func (c *Catalog) FindByStockCode(code string) (Product, bool) {
	code = strings.TrimSpace(code)
	for _, p := range c.products {
		if p.StockCode == code {
			return p, true
		}
	}
	return Product{}, false
}
