// Package llm adapts the OpenRouter-backed OpenAI client to the single chat
// operation the assistant pipeline consumes.
package llm

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	openrouterx "github.com/kittipos/shoptalk/pkg/openrouter"
)

type Client struct {
	api         *openaisdk.Client
	model       string
	temperature float64
	maxTokens   int
}

var _ contractx.ChatModel = (*Client)(nil)

func NewClient(api *openaisdk.Client, cfg openrouterx.Config) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("%w: openrouter client is required", contractx.ErrValidation)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("%w: model is required", contractx.ErrValidation)
	}

	return &Client{
		api:         api,
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxCompletionToken,
	}, nil
}

func (c *Client) Complete(
	ctx context.Context,
	messages []openaisdk.ChatCompletionMessageParamUnion,
	tools []openaisdk.ChatCompletionToolParam,
) (openaisdk.ChatCompletionMessage, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(c.model),
		Messages:    messages,
		Temperature: openaisdk.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(int64(c.maxTokens))
	}
	if len(tools) > 0 {
		params.Tools = tools
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return openaisdk.ChatCompletionMessage{}, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if len(completion.Choices) == 0 {
		return openaisdk.ChatCompletionMessage{}, fmt.Errorf("%w: empty completion choices", contractx.ErrModelInvoke)
	}
	return completion.Choices[0].Message, nil
}
