package domain

import (
	"fmt"
	"strings"
)

// ChatRole identifies the author of a conversation turn.
type ChatRole string

// Conversation roles. The values match the wire roles the AI service expects.
const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// IsValid checks if the chat role is one of the supported values.
func (r ChatRole) IsValid() bool {
	return r == RoleUser || r == RoleModel
}

// ChatTurn is a single turn in a concierge conversation. The full ordered
// history is resent on every call; there is no server-side session, so the
// ordering of turns is replayed verbatim as the model's context.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatReply is the concierge's answer to a conversation, optionally carrying
// flight suggestions reusable by the booking flow.
type ChatReply struct {
	Text             string   `json:"text"`
	SuggestedFlights []Flight `json:"suggestedFlights,omitempty"`
}

// ValidateHistory checks a conversation history before it is sent to the
// concierge: it must be non-empty, every turn must carry a valid role and
// non-blank text, and the latest turn must come from the user.
func ValidateHistory(history []ChatTurn) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: conversation history is required", ErrInvalidRequest)
	}
	for i, turn := range history {
		if !turn.Role.IsValid() {
			return fmt.Errorf("%w: history[%d] role must be user or model, got %q", ErrInvalidRequest, i, turn.Role)
		}
		if strings.TrimSpace(turn.Text) == "" {
			return fmt.Errorf("%w: history[%d] text is required", ErrInvalidRequest, i)
		}
	}
	if history[len(history)-1].Role != RoleUser {
		return fmt.Errorf("%w: the latest turn must come from the user", ErrInvalidRequest)
	}
	return nil
}
