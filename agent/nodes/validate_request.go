// Package nodes holds the individual steps of the assistant's
// message-handling pipeline. Each node takes the shared graph state, does one
// thing, and hands the state on.
package nodes

import (
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	MessageID string
	Reply     string
}

type GraphState struct {
	SessionID string
	Text      string
	Now       time.Time

	Session *statex.SessionState

	// Messages accumulates the completion transcript across the plan,
	// execute, and compose steps.
	Messages     []openai.ChatCompletionMessageParamUnion
	ToolRequests []contractx.ToolRequest
	ToolResults  []contractx.ToolResult

	Message string
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
