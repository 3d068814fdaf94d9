package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{StockCode: "A1", Description: "RED WOOLLY HOTTIE", UnitPrice: decimal.RequireFromString("3.39"), Quantity: 8},
		{StockCode: "B2", Description: "WHITE METAL LANTERN", UnitPrice: decimal.RequireFromString("3.39"), Quantity: 6},
		{StockCode: "C3", Description: "RED RETRO SPOT TEACUP", UnitPrice: decimal.RequireFromString("1.25"), Quantity: 2},
		{StockCode: "D4", Description: "RED CHARLOTTE BAG", UnitPrice: decimal.RequireFromString("0.85"), Quantity: 10},
	}
}

func codes(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.StockCode)
	}
	return out
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func TestSearch_NoFiltersReturnsFirstTwo(t *testing.T) {
	c := New(testProducts(), 2)
	got := c.Search(Filter{})
	assert.Equal(t, []string{"A1", "B2"}, codes(got))
}

func TestSearch_DescriptionIsCaseInsensitiveSubstring(t *testing.T) {
	c := New(testProducts(), 10)
	got := c.Search(Filter{Description: "red"})
	assert.Equal(t, []string{"A1", "C3", "D4"}, codes(got))
}

func TestSearch_PriceBoundsAreInclusive(t *testing.T) {
	c := New(testProducts(), 10)

	got := c.Search(Filter{MinPrice: decimalPtr("1.25"), MaxPrice: decimalPtr("3.39")})
	assert.Equal(t, []string{"A1", "B2", "C3"}, codes(got))
}

func TestSearch_MinQuantityIsInclusive(t *testing.T) {
	c := New(testProducts(), 10)
	got := c.Search(Filter{MinQuantity: intPtr(8)})
	assert.Equal(t, []string{"A1", "D4"}, codes(got))
}

func TestSearch_FiltersAreANDed(t *testing.T) {
	c := New(testProducts(), 10)
	got := c.Search(Filter{
		Description: "RED",
		MaxPrice:    decimalPtr("1.25"),
		MinQuantity: intPtr(3),
	})
	assert.Equal(t, []string{"D4"}, codes(got))
}

func TestSearch_CapPreservesCatalogOrder(t *testing.T) {
	c := New(testProducts(), 2)
	got := c.Search(Filter{Description: "RED"})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"A1", "C3"}, codes(got))
}

func TestSearch_ConfigurableCap(t *testing.T) {
	c := New(testProducts(), 3)
	got := c.Search(Filter{Description: "RED"})
	assert.Len(t, got, 3)
}

func TestSearch_NoMatchIsEmptyNotError(t *testing.T) {
	c := New(testProducts(), 2)
	got := c.Search(Filter{Description: "GOLDFISH"})
	assert.Empty(t, got)
}
