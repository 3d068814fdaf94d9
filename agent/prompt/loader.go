package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/assistant.txt
var assistantRaw string

// Assistant returns the trimmed system prompt for the shopping assistant.
// Safe to call concurrently; the embed is compile-time.
func Assistant() string {
	return strings.TrimSpace(assistantRaw)
}
