package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/spec"
)

// CampaignUseCase turns a conversation into a campaign specification and
// materializes validated specifications on the advertising platform. It
// implements port.CampaignUseCase.
type CampaignUseCase struct {
	conversations port.ConversationRepository
	model         port.Model
	collector     *ContextCollector
	extractor     *spec.Extractor
	materializer  *Materializer
	activator     *Activator
	logger        *slog.Logger

	// historyLimit caps how many stored turns are replayed to the model.
	historyLimit int
	systemPrompt string
}

// NewCampaignUseCase wires the use case. The system prompt defaults to
// SystemPrompt and the extractor to the default strategy chain.
func NewCampaignUseCase(
	conversations port.ConversationRepository,
	model port.Model,
	platform port.PlatformClient,
	collector *ContextCollector,
	historyLimit int,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		conversations: conversations,
		model:         model,
		collector:     collector,
		extractor:     spec.NewExtractor(),
		materializer:  NewMaterializer(platform, logger),
		activator:     NewActivator(platform, logger),
		logger:        logger,
		historyLimit:  historyLimit,
		systemPrompt:  SystemPrompt,
	}
}

// CreateConversation starts a new chat thread.
func (u *CampaignUseCase) CreateConversation(ctx context.Context) (domain.Conversation, error) {
	return u.conversations.CreateConversation(ctx)
}

// Conversation returns the full stored history of a thread.
func (u *CampaignUseCase) Conversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	return u.conversations.GetConversation(ctx, id, 0)
}

// Chat sends the conversation plus the new message to the model and reports
// whether the reply carries a usable specification. Context sources that
// fail are skipped. A failure to store the exchange is logged but does not
// hide the reply from the caller.
func (u *CampaignUseCase) Chat(ctx context.Context, req port.ChatRequest) (*port.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, port.ErrEmptyMessage
	}
	conv, err := u.conversations.GetConversation(ctx, req.ConversationID, u.historyLimit)
	if err != nil {
		return nil, err
	}

	userTurn := domain.RawTurn{Role: "user", Text: message}
	turns := domain.NormalizeTurns(append(conv.Turns, userTurn))

	var (
		blocks []domain.ContextBlock
		failed []string
	)
	if u.collector != nil {
		blocks, failed = u.collector.Collect(ctx)
	}

	gen, err := u.model.Generate(ctx, u.systemPrompt, blocks, turns)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w: %w", port.ErrModelUnavailable, err)
	}

	exchange := []domain.RawTurn{userTurn, {Role: "assistant", Text: gen.Text}}
	if err = u.conversations.AppendTurns(ctx, req.ConversationID, exchange); err != nil {
		u.logger.Error("store conversation turns",
			slog.String("conversation_id", req.ConversationID.String()),
			slog.Any("error", err),
		)
	}

	extraction := u.ExtractAndValidate(gen.Text)
	u.logger.Info("chat reply generated",
		slog.String("conversation_id", req.ConversationID.String()),
		slog.String("outcome", string(extraction.Outcome)),
		slog.Int("input_tokens", gen.Usage.InputTokens),
		slog.Int("output_tokens", gen.Usage.OutputTokens),
	)
	return &port.ChatResponse{
		ConversationID: req.ConversationID,
		Reply:          gen.Text,
		Usage:          gen.Usage,
		Extraction:     extraction,
		ContextErrors:  failed,
	}, nil
}

// ExtractAndValidate looks for a specification in raw and validates it.
func (u *CampaignUseCase) ExtractAndValidate(raw string) domain.Extraction {
	found, err := u.extractor.Extract(raw)
	if err != nil {
		return rejected(err)
	}
	if found == nil {
		return domain.Extraction{Outcome: domain.OutcomeNoSpec}
	}
	validated, err := spec.Validate(found)
	if err != nil {
		return rejected(err)
	}
	return domain.Extraction{Outcome: domain.OutcomeValidated, Spec: validated}
}

func rejected(err error) domain.Extraction {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		ve = &domain.ValidationError{Rule: "unknown", Reason: err.Error()}
	}
	return domain.Extraction{Outcome: domain.OutcomeRejected, Rejection: ve}
}

// Materialize creates the specification on the platform as paused drafts.
func (u *CampaignUseCase) Materialize(ctx context.Context, vs domain.ValidatedSpec) domain.MaterializationResult {
	return u.materializer.Materialize(ctx, vs)
}

// Approve activates a reviewed campaign with its ad sets and ads. This is
// the only call that can make the platform spend.
func (u *CampaignUseCase) Approve(ctx context.Context, campaignID string) (domain.ActivationResult, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return domain.ActivationResult{}, port.ErrEmptyCampaignID
	}
	return u.activator.Activate(ctx, campaignID)
}
