package usecase

import (
	"context"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
)

// ChatUseCase defines the interface for concierge conversations.
type ChatUseCase interface {
	// Chat validates the conversation history and forwards it to the
	// concierge gateway.
	Chat(ctx context.Context, history []domain.ChatTurn) (domain.ChatReply, error)
}

type chatUseCase struct {
	concierge domain.Concierge
}

// NewChatUseCase creates a ChatUseCase backed by the given concierge gateway.
func NewChatUseCase(concierge domain.Concierge) ChatUseCase {
	return &chatUseCase{concierge: concierge}
}

func (uc *chatUseCase) Chat(ctx context.Context, history []domain.ChatTurn) (domain.ChatReply, error) {
	if err := domain.ValidateHistory(history); err != nil {
		return domain.ChatReply{}, err
	}
	return uc.concierge.Chat(ctx, history), nil
}
