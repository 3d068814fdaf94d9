package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittipos/shoptalk/shop/catalog"
)

func productA() catalog.Product {
	return catalog.Product{
		StockCode:   "A",
		Description: "RED WOOLLY HOTTIE",
		UnitPrice:   decimal.RequireFromString("2.50"),
		Quantity:    10,
	}
}

func productB() catalog.Product {
	return catalog.Product{
		StockCode:   "B",
		Description: "WHITE METAL LANTERN",
		UnitPrice:   decimal.RequireFromString("5.00"),
		Quantity:    3,
	}
}

func TestAdd_MergesQuantitiesForSameStockCode(t *testing.T) {
	c := New()

	_, err := c.Add(productA(), 4)
	require.NoError(t, err)

	// Second insert carries a different description/price; the original line
	// must keep the values from first insertion.
	changed := productA()
	changed.Description = "RENAMED"
	changed.UnitPrice = decimal.RequireFromString("9.99")
	line, err := c.Add(changed, 1)
	require.NoError(t, err)

	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, "RED WOOLLY HOTTIE", line.Description)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("2.50")))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].StockCode)
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	for _, qty := range []int{0, -1} {
		_, err := c.Add(productA(), qty)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.True(t, c.Empty())
}

func TestRemove_NotFound(t *testing.T) {
	c := New()
	removal, err := c.Remove("MISSING", 1)
	require.NoError(t, err)
	assert.Equal(t, RemovalNotFound, removal.Status)
}

func TestRemove_Decrements(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 5)
	require.NoError(t, err)

	removal, err := c.Remove("A", 2)
	require.NoError(t, err)
	assert.Equal(t, RemovalDecremented, removal.Status)
	assert.Equal(t, "RED WOOLLY HOTTIE", removal.Description)
	assert.Equal(t, 3, removal.Remaining)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestRemove_ExactQuantityDeletesLine(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 5)
	require.NoError(t, err)

	removal, err := c.Remove("A", 5)
	require.NoError(t, err)
	assert.Equal(t, RemovalDeleted, removal.Status)
	// Description must survive the deletion.
	assert.Equal(t, "RED WOOLLY HOTTIE", removal.Description)

	assert.True(t, c.Empty())
	assert.Empty(t, c.Items())
}

func TestRemove_MoreThanHeldLeavesStateUntouched(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 2)
	require.NoError(t, err)

	removal, err := c.Remove("A", 3)
	require.NoError(t, err)
	assert.Equal(t, RemovalInsufficient, removal.Status)
	assert.Equal(t, 2, removal.Held)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove_RejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	_, err := c.Remove("A", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestItems_PreserveInsertionOrder(t *testing.T) {
	c := New()
	_, err := c.Add(productB(), 1)
	require.NoError(t, err)
	_, err = c.Add(productA(), 1)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].StockCode)
	assert.Equal(t, "A", items[1].StockCode)
}

func TestTotal(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 4) // 10.00
	require.NoError(t, err)
	_, err = c.Add(productB(), 3) // 15.00
	require.NoError(t, err)

	assert.Equal(t, "25.00", c.Total().StringFixed(2))
}

func TestCart_JSONRoundTrip(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 4)
	require.NoError(t, err)
	_, err = c.Add(productB(), 1)
	require.NoError(t, err)

	restored := roundTrip(t, c)
	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].StockCode)
	assert.Equal(t, "15.00", restored.Total().StringFixed(2))
}
