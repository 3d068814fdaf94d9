package nodes

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/kittipos/shoptalk/agent/contract"
)

// ComposeReply runs the second model pass over the tool results. Skipped when
// the plan step already produced a direct answer.
func ComposeReply(
	ctx context.Context,
	in *GraphState,
	model contractx.ChatModel,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if in.Message != "" {
		return in, nil
	}

	msg, err := model.Complete(ctx, in.Messages, nil)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: assistant reply is empty", contractx.ErrSchemaViolation)
	}
	in.Message = content
	return in, nil
}
