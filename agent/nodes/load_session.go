package nodes

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/kittipos/shoptalk/agent/contract"
	statex "github.com/kittipos/shoptalk/agent/state"
)

func LoadOrCreateSession(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
	customerID string,
	channelType string,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := store.Load(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return nil, err
		}
		st = statex.NewSessionState(in.SessionID, customerID, channelType, in.Now)
	}

	st.EnsureCart()
	in.Session = st
	return in, nil
}
