package tool

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// JSON-decoded tool arguments arrive as map[string]any; numbers are float64.

func stringArg(args map[string]any, key string) (string, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%s must be a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

func intArg(args map[string]any, key string) (int, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%s must be an integer", key)
	}
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s must be a whole number", key)
	}
	// Conversion of out-of-range floats to int is implementation-defined.
	if math.Abs(f) > math.MaxInt32 {
		return 0, false, fmt.Errorf("%s is out of range", key)
	}
	return int(f), true, nil
}

func priceArg(args map[string]any, key string) (*decimal.Decimal, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	d := decimal.NewFromFloat(f)
	if d.IsNegative() {
		return nil, fmt.Errorf("%s must not be negative", key)
	}
	return &d, nil
}

func boolArg(args map[string]any, key string) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}
