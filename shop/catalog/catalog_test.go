package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"StockCode":"85123A","Description":"WHITE HANGING HEART T-LIGHT HOLDER","UnitPrice":2.55,"Quantity":6},
		{"StockCode":"71053","Description":"WHITE METAL LANTERN","UnitPrice":3.39,"Quantity":6}
	]`)

	c, err := Load(Config{Path: path, MaxResults: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	p, ok := c.FindByStockCode("71053")
	require.True(t, ok)
	assert.Equal(t, "WHITE METAL LANTERN", p.Description)
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("3.39")))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Config{Path: filepath.Join(t.TempDir(), "absent.json")})
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"not":"an array"`)
	_, err := Load(Config{Path: path})
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoad_InvalidRecords(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "empty stock code",
			content: `[{"StockCode":" ","Description":"X","UnitPrice":1.0,"Quantity":1}]`,
		},
		{
			name:    "empty description",
			content: `[{"StockCode":"A1","Description":"","UnitPrice":1.0,"Quantity":1}]`,
		},
		{
			name:    "negative price",
			content: `[{"StockCode":"A1","Description":"X","UnitPrice":-0.01,"Quantity":1}]`,
		},
		{
			name:    "negative quantity",
			content: `[{"StockCode":"A1","Description":"X","UnitPrice":1.0,"Quantity":-3}]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalogFile(t, tc.content)
			_, err := Load(Config{Path: path})
			require.ErrorIs(t, err, ErrLoad)
		})
	}
}

func TestFindByStockCode_DuplicateCodesFirstWins(t *testing.T) {
	c := New([]Product{
		{StockCode: "A1", Description: "FIRST", UnitPrice: decimal.NewFromInt(1), Quantity: 1},
		{StockCode: "A1", Description: "SECOND", UnitPrice: decimal.NewFromInt(2), Quantity: 2},
	}, 0)

	p, ok := c.FindByStockCode("A1")
	require.True(t, ok)
	assert.Equal(t, "FIRST", p.Description)
}
