package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockCampaignUseCase, http.Handler) {
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, 1024).Router()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problem {
	t.Helper()
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var p problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func validatedSpec(t *testing.T) domain.ValidatedSpec {
	t.Helper()
	budget := int64(2000)
	return domain.NewValidatedSpec(domain.CampaignSpec{
		Campaign: &domain.CampaignDraft{Name: "Summer Sale", Objective: domain.ObjectiveSales, Status: domain.StatusPaused},
		AdSets:   []domain.AdSetSpec{{Name: "US", DailyBudget: &budget}},
	})
}

func TestHealth(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/api/v1/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateConversation(t *testing.T) {
	svc, h := newTestHandler(t)
	id := uuid.New()
	svc.EXPECT().CreateConversation(mock.Anything).
		Return(domain.Conversation{ID: id, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Turns: []domain.RawTurn{}}, nil).Once()

	rec := do(h, http.MethodPost, "/api/v1/conversations", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`","created_at":"2026-01-01T00:00:00Z","turns":[]}`, rec.Body.String())
}

func TestGetConversation(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, h := newTestHandler(t)
		id := uuid.New()
		svc.EXPECT().Conversation(mock.Anything, id).
			Return(&domain.Conversation{ID: id, Turns: []domain.RawTurn{{Role: "user", Text: "hi"}}}, nil).Once()

		rec := do(h, http.MethodGet, "/api/v1/conversations/"+id.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"turns":[{"role":"user","text":"hi"}]`)
	})
	t.Run("not found", func(t *testing.T) {
		svc, h := newTestHandler(t)
		id := uuid.New()
		svc.EXPECT().Conversation(mock.Anything, id).Return(nil, port.ErrConversationNotFound).Once()

		rec := do(h, http.MethodGet, "/api/v1/conversations/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, decodeProblem(t, rec).Status)
	})
	t.Run("bad id", func(t *testing.T) {
		_, h := newTestHandler(t)
		rec := do(h, http.MethodGet, "/api/v1/conversations/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("reply with spec", func(t *testing.T) {
		svc, h := newTestHandler(t)
		id := uuid.New()
		vs := validatedSpec(t)
		svc.EXPECT().Chat(mock.Anything, port.ChatRequest{ConversationID: id, Message: "go"}).
			Return(&port.ChatResponse{
				ConversationID: id,
				Reply:          "Here it is",
				Usage:          domain.Usage{InputTokens: 10, OutputTokens: 5},
				Extraction:     domain.Extraction{Outcome: domain.OutcomeValidated, Spec: vs},
				ContextErrors:  []string{domain.LabelCampaignContext},
			}, nil).Once()

		rec := do(h, http.MethodPost, "/api/v1/conversations/"+id.String()+"/messages", `{"message":"go"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body chatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Here it is", body.Reply)
		assert.Equal(t, domain.OutcomeValidated, body.Extraction.Outcome)
		require.NotNil(t, body.Extraction.Spec)
		assert.Equal(t, "Summer Sale", body.Extraction.Spec.Campaign.Name)
		assert.Nil(t, body.Extraction.Rejection)
		assert.Equal(t, []string{domain.LabelCampaignContext}, body.ContextErrors)
	})
	t.Run("missing message", func(t *testing.T) {
		_, h := newTestHandler(t)
		rec := do(h, http.MethodPost, "/api/v1/conversations/"+uuid.NewString()+"/messages", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"is required"}, decodeProblem(t, rec).Errors["message"])
	})
	t.Run("unknown field", func(t *testing.T) {
		_, h := newTestHandler(t)
		rec := do(h, http.MethodPost, "/api/v1/conversations/"+uuid.NewString()+"/messages", `{"msg":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("body too large", func(t *testing.T) {
		_, h := newTestHandler(t)
		big := `{"message":"` + strings.Repeat("a", 2048) + `"}`
		rec := do(h, http.MethodPost, "/api/v1/conversations/"+uuid.NewString()+"/messages", big)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
	t.Run("model unavailable", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Chat(mock.Anything, mock.Anything).
			Return(nil, errors.Join(port.ErrModelUnavailable, errors.New("quota"))).Once()

		rec := do(h, http.MethodPost, "/api/v1/conversations/"+uuid.NewString()+"/messages", `{"message":"hi"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestExtractSpec(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ExtractAndValidate("some text").
		Return(domain.Extraction{
			Outcome:   domain.OutcomeRejected,
			Rejection: &domain.ValidationError{Rule: "budget", Reason: "exactly one budget is required"},
		}).Once()

	rec := do(h, http.MethodPost, "/api/v1/specs/extract", `{"text":"some text"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"outcome":"REJECTED","rejection":{"rule":"budget","reason":"exactly one budget is required"}}`, rec.Body.String())
}

func TestCreateCampaign(t *testing.T) {
	const body = `{"spec":{"campaign":{"name":"Summer Sale"}}}`
	const raw = `{"campaign":{"name":"Summer Sale"}}`

	t.Run("created", func(t *testing.T) {
		svc, h := newTestHandler(t)
		vs := validatedSpec(t)
		svc.EXPECT().ExtractAndValidate(raw).Return(domain.Extraction{Outcome: domain.OutcomeValidated, Spec: vs}).Once()
		svc.EXPECT().Materialize(mock.Anything, vs).Return(domain.MaterializationResult{
			State:    domain.StateDone,
			Campaign: &domain.PlatformObject{ID: "1", Type: domain.ObjectCampaign, Status: domain.StatusPaused},
		}).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"state":"DONE"`)
	})
	t.Run("rejected", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ExtractAndValidate(raw).Return(domain.Extraction{
			Outcome:   domain.OutcomeRejected,
			Rejection: &domain.ValidationError{Rule: "draft_status", Reason: "status must be PAUSED"},
		}).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"status must be PAUSED"}, decodeProblem(t, rec).Errors["draft_status"])
	})
	t.Run("no spec", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ExtractAndValidate(`"launch something"`).Return(domain.Extraction{Outcome: domain.OutcomeNoSpec}).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns", `{"spec":"launch something"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
	t.Run("partial failure", func(t *testing.T) {
		svc, h := newTestHandler(t)
		vs := validatedSpec(t)
		step := domain.Step{Kind: domain.StepAdSet, AdSet: 0}
		svc.EXPECT().ExtractAndValidate(raw).Return(domain.Extraction{Outcome: domain.OutcomeValidated, Spec: vs}).Once()
		svc.EXPECT().Materialize(mock.Anything, vs).Return(domain.MaterializationResult{
			State:    domain.StateFailed,
			Campaign: &domain.PlatformObject{ID: "1", Type: domain.ObjectCampaign},
			FailedAt: &step,
			Error:    &domain.ErrorDescriptor{Code: 100, Message: "Invalid parameter"},
		}).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns", body)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `"failed_at":"ad_set[0]"`)
		assert.Contains(t, rec.Body.String(), `"id":"1"`)
	})
	t.Run("missing spec", func(t *testing.T) {
		_, h := newTestHandler(t)
		rec := do(h, http.MethodPost, "/api/v1/campaigns", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApproveCampaign(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Approve(mock.Anything, "120").Return(domain.ActivationResult{
			Campaign: &domain.PlatformObject{ID: "120", Type: domain.ObjectCampaign, Status: domain.StatusActive},
			AdSets:   []domain.PlatformObject{{ID: "121", Type: domain.ObjectAdSet, Status: domain.StatusActive}},
			Ads:      []domain.PlatformObject{{ID: "131", Type: domain.ObjectAd, Status: domain.StatusActive}},
		}, nil).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns/120/approve", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"campaign": {"id": "120", "type": "campaign", "status": "ACTIVE"},
			"ad_sets": [{"id": "121", "type": "ad_set", "status": "ACTIVE"}],
			"ads": [{"id": "131", "type": "ad", "status": "ACTIVE"}],
			"failed_at": null,
			"error": null
		}`, rec.Body.String())
	})
	t.Run("partial activation", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Approve(mock.Anything, "120").Return(domain.ActivationResult{
			AdSets:   []domain.PlatformObject{},
			Ads:      []domain.PlatformObject{{ID: "131", Type: domain.ObjectAd, Status: domain.StatusActive}},
			FailedAt: &domain.Step{Kind: domain.StepAdSet, AdSet: 0},
			Error:    &domain.ErrorDescriptor{Code: 100, Message: "Invalid parameter"},
		}, nil).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns/120/approve", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{
			"campaign": null,
			"ad_sets": [],
			"ads": [{"id": "131", "type": "ad", "status": "ACTIVE"}],
			"failed_at": "ad_set[0]",
			"error": {"code": 100, "message": "Invalid parameter"}
		}`, rec.Body.String())
	})
	t.Run("invalid id", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Approve(mock.Anything, "me").
			Return(domain.ActivationResult{}, fmt.Errorf("list ad sets of me: %w", port.ErrInvalidObjectID)).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns/me/approve", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("platform error", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Approve(mock.Anything, "120").
			Return(domain.ActivationResult{}, &domain.PlatformError{Code: 190, Message: "token expired"}).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns/120/approve", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "token expired", decodeProblem(t, rec).Detail)
	})
	t.Run("internal error", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().Approve(mock.Anything, "120").Return(domain.ActivationResult{}, context.DeadlineExceeded).Once()

		rec := do(h, http.MethodPost, "/api/v1/campaigns/120/approve", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
