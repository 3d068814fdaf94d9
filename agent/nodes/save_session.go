package nodes

import (
	"context"
	"fmt"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
)

func SaveSession(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.AppendTurn(statex.RoleUser, in.Text)
	in.Session.AppendTurn(statex.RoleAssistant, in.Message)
	in.Session.Touch(in.Now)

	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("state validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}
