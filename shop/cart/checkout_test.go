package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, c *Cart) *Cart {
	t.Helper()
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	restored := New()
	require.NoError(t, json.Unmarshal(raw, restored))
	return restored
}

func TestCheckout_EmptyCartComputesNoTotal(t *testing.T) {
	res := Checkout(New(), false)
	assert.Equal(t, CheckoutEmpty, res.Status)
	assert.True(t, res.Total.IsZero())

	res = Checkout(New(), true)
	assert.Equal(t, CheckoutEmpty, res.Status)
}

func TestCheckout_QuoteDoesNotMutate(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 4)
	require.NoError(t, err)

	res := Checkout(c, false)
	assert.Equal(t, CheckoutQuoted, res.Status)
	assert.Equal(t, "10.00", res.Total.StringFixed(2))
	assert.False(t, c.Empty())
}

func TestCheckout_QuoteThenConfirmSameTotal(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 4)
	require.NoError(t, err)
	_, err = c.Add(productB(), 2)
	require.NoError(t, err)

	quote := Checkout(c, false)
	confirm := Checkout(c, true)

	assert.Equal(t, CheckoutQuoted, quote.Status)
	assert.Equal(t, CheckoutConfirmed, confirm.Status)
	assert.Equal(t, quote.Total.StringFixed(2), confirm.Total.StringFixed(2))
}

func TestCheckout_ConfirmClearsCart(t *testing.T) {
	c := New()
	_, err := c.Add(productA(), 1)
	require.NoError(t, err)

	res := Checkout(c, true)
	assert.Equal(t, CheckoutConfirmed, res.Status)
	assert.True(t, c.Empty())

	// A second confirmation must not re-bill the cleared items.
	res = Checkout(c, true)
	assert.Equal(t, CheckoutEmpty, res.Status)
}

// Worked example: A priced 2.50 qty 10, B priced 5.00 qty 3.
func TestCart_WorkedExample(t *testing.T) {
	c := New()

	_, err := c.Add(productA(), 4)
	require.NoError(t, err)
	line, err := c.Add(productA(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	quote := Checkout(c, false)
	assert.Equal(t, "12.50", quote.Total.StringFixed(2))

	removal, err := c.Remove("A", 5)
	require.NoError(t, err)
	assert.Equal(t, RemovalDeleted, removal.Status)
	assert.True(t, c.Empty())
}
