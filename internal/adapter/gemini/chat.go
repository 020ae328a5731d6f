package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/logger"
)

// personaInstruction pins the concierge's voice and suggestion behavior.
const personaInstruction = `You are the Lead Concierge for Fast Flight, a world-class luxury reservation system.
Your tone is sophisticated, welcoming, and exceptionally helpful.

Guidelines:
- If the user asks about destinations or flights, suggest 1-2 realistic options in the 'suggestedFlights' field.
- Suggest exclusive, high-end destinations like Tokyo, Paris, Dubai, or the Swiss Alps.
- Quote all prices in Indian Rupees (₹).
- If suggesting flights, make the 'text' field warm and inviting, explaining WHY you picked these specific options.
- Ensure all flight data is realistic and consistent with the user's inquiry.
- Encourage users to use the 'Book Now' button attached to your suggestions.`

// ChatGateway answers concierge conversations. Like the search gateway it
// never fails: unusable model output yields FallbackReply.
type ChatGateway struct {
	sender  conversationSender
	timeout time.Duration
}

var _ domain.Concierge = (*ChatGateway)(nil)

// Chat sends the conversation to the model and returns its reply. The caller
// is responsible for validating the history first; Chat assumes the final
// turn is the user's message and replays everything before it as context.
func (g *ChatGateway) Chat(ctx context.Context, history []domain.ChatTurn) domain.ChatReply {
	ctx, cancel := callContext(ctx, g.timeout)
	defer cancel()

	if len(history) == 0 {
		return FallbackReply()
	}

	prior := make([]*genai.Content, 0, len(history)-1)
	for _, turn := range history[:len(history)-1] {
		prior = append(prior, &genai.Content{
			Role:  string(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	latest := history[len(history)-1].Text

	resp, err := g.sender.send(ctx, prior, genai.Text(latest))
	if err != nil {
		logger.Warn().Err(err).Msg("concierge request failed, serving fallback")
		return FallbackReply()
	}

	reply, err := parseReply(responseText(resp))
	if err != nil {
		logger.Warn().Err(err).Msg("concierge response unusable, serving fallback")
		return FallbackReply()
	}

	return reply
}

// parseReply decodes a concierge reply. The text field is mandatory.
// Suggested flights are optional extras: an invalid one is dropped rather
// than failing the reply, since the conversational answer still stands.
func parseReply(raw string) (domain.ChatReply, error) {
	if raw == "" {
		return domain.ChatReply{}, fmt.Errorf("empty response")
	}

	var reply domain.ChatReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return domain.ChatReply{}, fmt.Errorf("decode reply: %w", err)
	}
	if reply.Text == "" {
		return domain.ChatReply{}, fmt.Errorf("reply text is required")
	}

	if len(reply.SuggestedFlights) > 0 {
		valid := reply.SuggestedFlights[:0]
		for i := range reply.SuggestedFlights {
			f := reply.SuggestedFlights[i]
			if err := f.Validate(); err != nil {
				logger.Debug().Err(err).Str("flightId", f.ID).Msg("dropping invalid suggested flight")
				continue
			}
			valid = append(valid, f)
		}
		reply.SuggestedFlights = valid
		if len(valid) == 0 {
			reply.SuggestedFlights = nil
		}
	}

	return reply, nil
}
