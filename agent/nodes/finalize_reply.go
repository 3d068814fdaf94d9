package nodes

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	contractx "github.com/kittipos/shoptalk/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Message)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: assistant produced an empty reply", contractx.ErrValidation)
	}
	return GraphOutput{
		MessageID: uuid.NewString(),
		Reply:     reply,
	}, nil
}
