// Package assistant wires the dialogue nodes into a compiled graph and
// exposes the single HandleMessage entrypoint used by the CLI.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	nodex "github.com/kittipos/shoptalk/agent/nodes"
	promptx "github.com/kittipos/shoptalk/agent/prompt"
	statex "github.com/kittipos/shoptalk/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Config struct {
	CustomerID  string
	ChannelType string
}

type Assistant struct {
	store statex.Store
	model contractx.ChatModel
	tools contractx.ToolGateway

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	systemPrompt string
	customerID   string
	channelType  string

	now func() time.Time
}

func New(
	store statex.Store,
	model contractx.ChatModel,
	tools contractx.ToolGateway,
	cfg Config,
) (*Assistant, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if model == nil {
		return nil, errors.New("chat model is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	customerID := strings.TrimSpace(cfg.CustomerID)
	if customerID == "" {
		customerID = "default-customer"
	}
	channelType := strings.TrimSpace(cfg.ChannelType)
	if channelType == "" {
		channelType = "cli"
	}

	a := &Assistant{
		store:        store,
		model:        model,
		tools:        tools,
		systemPrompt: promptx.Assistant(),
		customerID:   customerID,
		channelType:  channelType,
		now:          time.Now,
	}

	graphRunner, err := a.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

func (a *Assistant) HandleMessage(ctx context.Context, sessionID string, text string) (contractx.Reply, error) {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return contractx.Reply{}, err
	}
	return contractx.Reply{
		MessageID: out.MessageID,
		Text:      out.Reply,
	}, nil
}
