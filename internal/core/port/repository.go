package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository persists chat history. It is an outbound port in
// hexagonal architecture; implementations must be safe for concurrent use.
type ConversationRepository interface {
	// CreateConversation starts an empty conversation.
	CreateConversation(ctx context.Context) (domain.Conversation, error)
	// GetConversation returns the conversation with at most limit of its
	// most recent turns, oldest first. A limit <= 0 returns every turn.
	// ErrConversationNotFound is returned for unknown IDs.
	GetConversation(ctx context.Context, id uuid.UUID, limit int) (*domain.Conversation, error)
	// AppendTurns stores turns at the end of the conversation atomically.
	AppendTurns(ctx context.Context, id uuid.UUID, turns []domain.RawTurn) error
}

// StoreRepository reads the store catalogue.
type StoreRepository interface {
	// ListProducts returns up to limit products, most recently updated first.
	ListProducts(ctx context.Context, limit int) ([]domain.Product, error)
}
