package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Model is the language-model service. Generate sends the system prompt with
// the context blocks rendered ahead of it, followed by the normalized turns,
// and returns the raw reply text.
type Model interface {
	Generate(ctx context.Context, systemPrompt string, blocks []domain.ContextBlock, turns []domain.ConversationTurn) (domain.Generation, error)
}

// Credentials supplies secrets to outbound adapters. Implementations decide
// where secrets live; the core never reads process state for them.
type Credentials interface {
	PlatformAccessToken(ctx context.Context) (string, error)
	ModelAPIKey(ctx context.Context) (string, error)
}
