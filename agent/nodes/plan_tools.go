package nodes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
)

// PlanTools runs the first model pass: the assistant either answers directly
// or requests tool calls. Tool call arguments are decoded and validated here
// so the executor only sees well-formed requests.
func PlanTools(
	ctx context.Context,
	in *GraphState,
	model contractx.ChatModel,
	tools contractx.ToolGateway,
	systemPrompt string,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Messages = transcript(systemPrompt, in.Session, in.Text)

	msg, err := model.Complete(ctx, in.Messages, tools.Definitions())
	if err != nil {
		return nil, err
	}

	if len(msg.ToolCalls) == 0 {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return nil, fmt.Errorf("%w: assistant returned neither text nor tool calls", contractx.ErrSchemaViolation)
		}
		in.Message = content
		return in, nil
	}

	// The assistant tool-call turn must precede the tool responses.
	in.Messages = append(in.Messages, msg.ToParam())

	reqs, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return nil, err
	}
	in.ToolRequests = reqs
	return in, nil
}

func transcript(systemPrompt string, session *statex.SessionState, userText string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(session.History)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range session.History {
		switch turn.Role {
		case statex.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	return append(messages, openai.UserMessage(userText))
}

func toToolRequests(calls []openai.ChatCompletionMessageToolCall) ([]contractx.ToolRequest, error) {
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			ID:   call.ID,
			Tool: name,
			Args: args,
		})
	}
	return reqs, nil
}
