package contract

// ToolRequest is one tool invocation extracted from a model tool call.
type ToolRequest struct {
	ID   string         `json:"id,omitempty"`
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult carries the outcome of a tool invocation back to the model.
// Failures are reported in Error, never raised across the tool boundary;
// not-found lookups are ordinary results.
type ToolResult struct {
	ID     string `json:"id,omitempty"`
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Reply is one assistant-authored message. MessageID identifies the message
// for deduplication at the rendering boundary.
type Reply struct {
	MessageID string `json:"message_id"`
	Text      string `json:"text"`
}
