// Package gemini implements the two AI gateways against Google's generative
// text service: a flight search gateway and a concierge chat gateway. Both
// constrain the model to a strict JSON schema, validate whatever comes back,
// and degrade to fixed fallback values on any failure — callers always
// receive a usable value.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// jsonMIMEType forces the model to answer with JSON only.
const jsonMIMEType = "application/json"

// Client wraps the Gemini API client and hands out configured gateways.
type Client struct {
	client  *genai.Client
	timeout time.Duration
}

// NewClient creates a Gemini client with the given API key. The timeout
// bounds each generate call; zero means the caller's context decides.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: c, timeout: timeout}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// NewSearchGateway returns a flight search gateway bound to the given model.
func (c *Client) NewSearchGateway(model string) *SearchGateway {
	m := c.client.GenerativeModel(model)
	m.GenerationConfig.ResponseMIMEType = jsonMIMEType
	m.GenerationConfig.ResponseSchema = flightListSchema

	return &SearchGateway{gen: m, timeout: c.timeout}
}

// NewConcierge returns a chat gateway bound to the given model, steered by
// the fixed concierge persona.
func (c *Client) NewConcierge(model string) *ChatGateway {
	m := c.client.GenerativeModel(model)
	m.GenerationConfig.ResponseMIMEType = jsonMIMEType
	m.GenerationConfig.ResponseSchema = chatReplySchema
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(personaInstruction)}}

	return &ChatGateway{sender: &modelSender{model: m}, timeout: c.timeout}
}

// generator abstracts the single-shot generate call of a Gemini model.
// *genai.GenerativeModel satisfies it; tests substitute fakes.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// conversationSender abstracts a multi-turn generate call that replays a
// conversation history before the latest message.
type conversationSender interface {
	send(ctx context.Context, history []*genai.Content, msg ...genai.Part) (*genai.GenerateContentResponse, error)
}

// modelSender replays the history through a fresh chat session per call;
// the service keeps no state between calls.
type modelSender struct {
	model *genai.GenerativeModel
}

func (s *modelSender) send(ctx context.Context, history []*genai.Content, msg ...genai.Part) (*genai.GenerateContentResponse, error) {
	cs := s.model.StartChat()
	cs.History = history
	return cs.SendMessage(ctx, msg...)
}

// responseText concatenates the text parts of the first candidate.
// Returns an empty string when the response carries no usable content.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// callContext applies the configured per-call timeout, if any.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
