package state

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cartx "github.com/kittipos/shoptalk/shop/cart"
)

// maxHistoryTurns bounds how much conversation is replayed to the model.
const maxHistoryTurns = 20

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionState is the per-session source of truth: the shopping cart and the
// recent conversation history. One state per session id; never shared across
// sessions.
type SessionState struct {
	SessionID   string `json:"session_id"`
	CustomerID  string `json:"customer_id"`
	ChannelType string `json:"channel_type"`

	Cart    *cartx.Cart `json:"cart,omitempty"`
	History []Turn      `json:"history,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionState(sessionID, customerID, channelType string, now time.Time) *SessionState {
	return &SessionState{
		SessionID:   sessionID,
		CustomerID:  customerID,
		ChannelType: channelType,
		Cart:        cartx.New(),
		UpdatedAt:   now.UTC(),
	}
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// EnsureCart makes sure the cart is initialized, e.g. after deserialization
// of an older payload.
func (s *SessionState) EnsureCart() *cartx.Cart {
	if s.Cart == nil {
		s.Cart = cartx.New()
	}
	return s.Cart
}

// AppendTurn records a conversation turn, trimming the oldest turns beyond
// the history cap.
func (s *SessionState) AppendTurn(role Role, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	s.History = append(s.History, Turn{Role: role, Content: content})
	if overflow := len(s.History) - maxHistoryTurns; overflow > 0 {
		s.History = append([]Turn(nil), s.History[overflow:]...)
	}
}

func (s *SessionState) Validate() error {
	if s == nil {
		return errors.New("nil session state")
	}
	if strings.TrimSpace(s.SessionID) == "" {
		return ErrInvalidSession
	}
	if s.Cart != nil {
		for code, line := range s.Cart.Lines {
			if line == nil || line.Quantity <= 0 {
				return fmt.Errorf("cart line %s has non-positive quantity", code)
			}
		}
	}
	return nil
}
