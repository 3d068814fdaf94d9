package nodes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
)

type stubGateway struct {
	results []contractx.ToolResult
}

func (s *stubGateway) Definitions() []openai.ChatCompletionToolParam {
	return nil
}

func (s *stubGateway) Execute(ctx context.Context, session *statex.SessionState, reqs []contractx.ToolRequest) []contractx.ToolResult {
	return append([]contractx.ToolResult(nil), s.results...)
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	nowFn := func() time.Time { return now }

	if _, err := ValidateRequest(GraphInput{SessionID: "  ", Text: "hi"}, nowFn); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := ValidateRequest(GraphInput{SessionID: "s1", Text: "  "}, nowFn); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}

	st, err := ValidateRequest(GraphInput{SessionID: " s1 ", Text: " hello "}, nowFn)
	if err != nil {
		t.Fatalf("ValidateRequest() error = %v", err)
	}
	if st.SessionID != "s1" || st.Text != "hello" {
		t.Fatalf("input must be trimmed: %+v", st)
	}
	if !st.Now.Equal(now) {
		t.Fatalf("unexpected timestamp: %v", st.Now)
	}
}

func TestExecuteToolsWrapsResults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	in := &GraphState{
		SessionID: "s1",
		Session:   statex.NewSessionState("s1", "c1", "cli", now),
		ToolRequests: []contractx.ToolRequest{
			{ID: "call_1", Tool: "cart.view"},
			{ID: "call_2", Tool: "catalog.search"},
		},
	}
	gateway := &stubGateway{
		results: []contractx.ToolResult{
			{ID: "call_1", Tool: "cart.view", Result: "Cart is empty."},
			{ID: "call_2", Tool: "catalog.search", Error: "description is required"},
		},
	}

	out, err := ExecuteTools(context.Background(), in, gateway)
	if err != nil {
		t.Fatalf("ExecuteTools() error = %v", err)
	}
	if len(out.Messages) != 2 {
		t.Fatalf("expected two tool messages, got %d", len(out.Messages))
	}
	if len(out.ToolResults) != 2 {
		t.Fatalf("expected two tool results, got %d", len(out.ToolResults))
	}

	first, err := json.Marshal(out.Messages[0])
	if err != nil {
		t.Fatalf("marshal tool message: %v", err)
	}
	for _, want := range []string{`\"ok\":true`, `\"tool\":\"cart.view\"`, "call_1"} {
		if !strings.Contains(string(first), want) {
			t.Fatalf("tool message missing %s: %s", want, first)
		}
	}

	second, err := json.Marshal(out.Messages[1])
	if err != nil {
		t.Fatalf("marshal tool message: %v", err)
	}
	for _, want := range []string{`\"ok\":false`, "description is required"} {
		if !strings.Contains(string(second), want) {
			t.Fatalf("tool message missing %s: %s", want, second)
		}
	}
}

func TestExecuteToolsNoRequests(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	in := &GraphState{
		SessionID: "s1",
		Session:   statex.NewSessionState("s1", "c1", "cli", now),
	}

	out, err := ExecuteTools(context.Background(), in, &stubGateway{})
	if err != nil {
		t.Fatalf("ExecuteTools() error = %v", err)
	}
	if len(out.Messages) != 0 || len(out.ToolResults) != 0 {
		t.Fatalf("no requests must leave state untouched: %+v", out)
	}
}

func TestFinalizeReply(t *testing.T) {
	t.Parallel()

	if _, err := FinalizeReply(&GraphState{Message: "   "}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	out, err := FinalizeReply(&GraphState{Message: " all set "})
	if err != nil {
		t.Fatalf("FinalizeReply() error = %v", err)
	}
	if out.Reply != "all set" {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if out.MessageID == "" {
		t.Fatal("expected non-empty message id")
	}

	again, err := FinalizeReply(&GraphState{Message: "all set"})
	if err != nil {
		t.Fatalf("FinalizeReply() error = %v", err)
	}
	if again.MessageID == out.MessageID {
		t.Fatal("message ids must be unique per reply")
	}
}
