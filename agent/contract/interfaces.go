package contract

import (
	"context"

	"github.com/openai/openai-go"

	statex "github.com/kittipos/shoptalk/agent/state"
)

// ChatModel is the single LLM operation the pipeline needs: one completion
// over the given messages, optionally offering tool definitions.
type ChatModel interface {
	Complete(
		ctx context.Context,
		messages []openai.ChatCompletionMessageParamUnion,
		tools []openai.ChatCompletionToolParam,
	) (openai.ChatCompletionMessage, error)
}

// ToolGateway executes model-selected tool requests against the session's
// shop state. Implementations must encode tool failures inside ToolResult.
type ToolGateway interface {
	Definitions() []openai.ChatCompletionToolParam
	Execute(ctx context.Context, session *statex.SessionState, reqs []ToolRequest) []ToolResult
}
