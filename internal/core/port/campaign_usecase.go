package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrEmptyCampaignID  = errors.New("campaign id is empty")
	ErrModelUnavailable = errors.New("model unavailable")
)

// CampaignUseCase defines the operations exposed to the HTTP layer. This
// interface is the primary port into the application domain.
type CampaignUseCase interface {
	// CreateConversation starts a new chat thread.
	CreateConversation(ctx context.Context) (domain.Conversation, error)

	// Conversation returns the stored history of a chat thread.
	Conversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)

	// Chat appends the user's message to the conversation, asks the model
	// for a reply and looks for a campaign specification in it. Nothing is
	// created on the advertising platform.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// ExtractAndValidate looks for a specification in raw model text. It
	// never fails: a miss and a rejection are outcomes, not errors.
	ExtractAndValidate(raw string) domain.Extraction

	// Materialize creates the validated specification on the platform as
	// paused drafts. The result lists everything created even when a step
	// failed.
	Materialize(ctx context.Context, spec domain.ValidatedSpec) domain.MaterializationResult

	// Approve activates a campaign that a human has reviewed together with
	// every ad set and ad under it. The returned error is set only when
	// nothing was changed; a failed activation is reported in the result.
	Approve(ctx context.Context, campaignID string) (domain.ActivationResult, error)
}

// ChatRequest is a single user message in a conversation.
type ChatRequest struct {
	ConversationID uuid.UUID
	Message        string
}

// ChatResponse carries the model's reply and what was found in it.
type ChatResponse struct {
	ConversationID uuid.UUID
	Reply          string
	Usage          domain.Usage
	Extraction     domain.Extraction
	// ContextErrors names context sources that failed and were left out.
	ContextErrors []string
}
