package llm

import (
	"context"
	"fmt"
)

// Provider is the completion capability used by the tutor.
// Implementations turn a prompt (plus an optional system instruction)
// into free text.
type Provider interface {
	// Generate sends the request to the backend and returns its text output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System is the system prompt. Empty means no system instruction.
	System string

	// Messages is the conversation. Tutor calls are single-turn, so this
	// normally holds one user message.
	Messages []Message

	// MaxTokens caps the response length. Zero lets the provider decide.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the provider output.
type Response struct {
	// Text is the generated completion.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// defaultMaxTokens is used by Complete when building a request.
const defaultMaxTokens = 1024

// Complete is the single-shot form used throughout the tutor:
// one prompt, an optional system instruction, a temperature, text back.
func Complete(ctx context.Context, p Provider, prompt, system string, temperature float64) (string, error) {
	resp, err := p.Generate(ctx, Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens:   defaultMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("complete with %s: %w", p.ModelID(), err)
	}
	return resp.Text, nil
}
