package service

import "context"

// TextCompleter is the narrow contract the chat façade needs from an LLM
// provider: prompt in, generated text out. Keeping it this small means the
// rest of the system is testable without network access.
type TextCompleter interface {
	// Complete sends a system and user prompt and returns the full response text
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// CompleteStream streams the response; the callback receives each chunk
	CompleteStream(ctx context.Context, systemPrompt, userPrompt string, callback StreamCallback) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// StreamCallback is called for each chunk in streaming mode
type StreamCallback func(chunk *StreamChunk) error

// StreamChunk represents a generic streaming response chunk
type StreamChunk struct {
	// Regular content
	Content string

	// Thinking/reasoning content (provider-specific, e.g. DeepSeek)
	ThinkingContent string

	// Role (assistant, user, system)
	Role string

	// Whether this is the final chunk
	Done bool
}

// StreamChunkParser is the interface for provider-specific chunk parsing
type StreamChunkParser interface {
	ParseChunk(data []byte) (*StreamChunk, error)
}
