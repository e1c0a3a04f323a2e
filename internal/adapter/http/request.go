package httpadapter

import (
	"encoding/json"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type sendMessageRequest struct {
	Message string `json:"message" validate:"required,max=20000"`
}

type extractRequest struct {
	Text string `json:"text" validate:"required"`
}

type createCampaignRequest struct {
	Spec json.RawMessage `json:"spec" validate:"required"`
}

type rejectionResponse struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

type extractionResponse struct {
	Outcome   domain.ExtractionOutcome `json:"outcome"`
	Spec      *domain.CampaignSpec     `json:"spec,omitempty"`
	Rejection *rejectionResponse       `json:"rejection,omitempty"`
}

type chatResponse struct {
	ConversationID uuid.UUID          `json:"conversation_id"`
	Reply          string             `json:"reply"`
	Usage          domain.Usage       `json:"usage"`
	Extraction     extractionResponse `json:"extraction"`
	ContextErrors  []string           `json:"context_errors,omitempty"`
}

func newExtractionResponse(e domain.Extraction) extractionResponse {
	out := extractionResponse{Outcome: e.Outcome}
	if e.Outcome == domain.OutcomeValidated && !e.Spec.IsZero() {
		s := e.Spec.Spec()
		out.Spec = &s
	}
	if e.Rejection != nil {
		out.Rejection = &rejectionResponse{Rule: e.Rejection.Rule, Reason: e.Rejection.Reason}
	}
	return out
}

func newChatResponse(resp *port.ChatResponse) chatResponse {
	return chatResponse{
		ConversationID: resp.ConversationID,
		Reply:          resp.Reply,
		Usage:          resp.Usage,
		Extraction:     newExtractionResponse(resp.Extraction),
		ContextErrors:  resp.ContextErrors,
	}
}
