package llm

import (
	"context"
)

// Provider is the interface to a text-generation backend.
type Provider interface {
	// GenerateContent sends a single prompt and returns the reply text.
	GenerateContent(ctx context.Context, prompt string, systemPrompt string) (string, error)
	// StartChat opens a provider-side dialogue handle bound to the given
	// system instruction. Conversation history lives on the provider side;
	// callers only append messages in order.
	StartChat(ctx context.Context, systemInstruction string) (Chat, error)
}

// Chat is an opaque multi-turn dialogue handle.
type Chat interface {
	Send(ctx context.Context, message string) (string, error)
}
