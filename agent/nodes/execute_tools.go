package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	contractx "github.com/kittipos/shoptalk/agent/contract"
)

// toolEnvelope is the JSON shape handed back to the model for each tool call.
type toolEnvelope struct {
	OK    bool   `json:"ok"`
	Tool  string `json:"tool"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func ExecuteTools(
	ctx context.Context,
	in *GraphState,
	tools contractx.ToolGateway,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if len(in.ToolRequests) == 0 {
		return in, nil
	}

	results := tools.Execute(ctx, in.Session, in.ToolRequests)
	in.ToolResults = results

	for _, res := range results {
		log.Debug().
			Str("session_id", in.SessionID).
			Str("tool", res.Tool).
			Bool("ok", res.Error == "").
			Msg("tool executed")

		payload, err := json.Marshal(toolEnvelope{
			OK:    res.Error == "",
			Tool:  res.Tool,
			Data:  res.Result,
			Error: res.Error,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal result for tool=%s: %w", res.Tool, err)
		}
		in.Messages = append(in.Messages, openai.ToolMessage(string(payload), res.ID))
	}
	return in, nil
}
