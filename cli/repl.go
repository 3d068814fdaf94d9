// Package cli implements the interactive chat loop on stdin/stdout.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/kittipos/shoptalk/agent/contract"
)

// maxRenderLength caps how many characters of a reply are printed in one
// event. Counted in runes so truncation never splits a multibyte sequence.
const maxRenderLength = 1500

type Assistant interface {
	HandleMessage(ctx context.Context, sessionID string, text string) (contractx.Reply, error)
}

type Loop struct {
	assistant Assistant
	sessionID string

	in  io.Reader
	out io.Writer

	printed map[string]struct{}
}

func NewLoop(assistant Assistant, sessionID string, in io.Reader, out io.Writer) (*Loop, error) {
	if assistant == nil {
		return nil, errors.New("assistant is required")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("session id is required")
	}
	if in == nil || out == nil {
		return nil, errors.New("input and output streams are required")
	}
	return &Loop{
		assistant: assistant,
		sessionID: sessionID,
		in:        in,
		out:       out,
		printed:   make(map[string]struct{}),
	}, nil
}

// Run reads user lines until EOF or an exit keyword. Assistant failures are
// logged and reported inline; the loop keeps going.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(l.out, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if isExitKeyword(text) {
			fmt.Fprintln(l.out, "Exiting chat.")
			return nil
		}

		reply, err := l.assistant.HandleMessage(ctx, l.sessionID, text)
		if err != nil {
			log.Error().Err(err).Str("session_id", l.sessionID).Msg("handle message failed")
			fmt.Fprintln(l.out, "Sorry, something went wrong. Please try again.")
			continue
		}

		if _, seen := l.printed[reply.MessageID]; seen {
			continue
		}
		l.printed[reply.MessageID] = struct{}{}

		fmt.Fprintln(l.out, render(reply.Text))
	}
}

func isExitKeyword(text string) bool {
	switch strings.ToLower(text) {
	case "exit", "quit":
		return true
	}
	return false
}

func render(text string) string {
	out := "Assistant: " + text
	if runes := []rune(out); len(runes) > maxRenderLength {
		out = string(runes[:maxRenderLength]) + " ... (truncated)"
	}
	return out
}
