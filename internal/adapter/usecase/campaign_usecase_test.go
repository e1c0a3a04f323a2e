package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
	"adpilot/internal/core/spec"
)

type fixture struct {
	convs    *mocks.MockConversationRepository
	model    *mocks.MockModel
	platform *mocks.MockPlatformClient
	store    *mocks.MockStoreRepository
	uc       *CampaignUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		convs:    mocks.NewMockConversationRepository(t),
		model:    mocks.NewMockModel(t),
		platform: mocks.NewMockPlatformClient(t),
		store:    mocks.NewMockStoreRepository(t),
	}
	collector := NewContextCollector(f.store, f.platform, CollectorOptions{ProductLimit: 5, CampaignLimit: 3}, discardLogger())
	f.uc = NewCampaignUseCase(f.convs, f.model, f.platform, collector, 20, discardLogger())
	return f
}

// TestChatValidatedSpec walks a chat turn whose reply carries a valid
// specification.
func TestChatValidatedSpec(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	history := &domain.Conversation{ID: id, Turns: []domain.RawTurn{
		{Role: "user", Text: "I sell sunglasses"},
		{Role: "assistant", Text: "What is your budget?"},
	}}
	reply := "Here you go:\n```json\n" + summerSale + "\n```"

	f.convs.EXPECT().GetConversation(mock.Anything, id, 20).Return(history, nil).Once()
	f.store.EXPECT().ListProducts(mock.Anything, 5).
		Return([]domain.Product{{Handle: "aviator", Title: "Aviator", PriceMinor: 4900, Currency: "USD"}}, nil).Once()
	f.platform.EXPECT().ListCampaigns(mock.Anything, 3).Return(nil, nil).Once()
	f.model.EXPECT().
		Generate(mock.Anything, SystemPrompt, mock.MatchedBy(func(blocks []domain.ContextBlock) bool {
			return len(blocks) == 1 && blocks[0].Label == domain.LabelStoreContext
		}), []domain.ConversationTurn{
			{Role: domain.RoleUser, Text: "I sell sunglasses"},
			{Role: domain.RoleAssistant, Text: "What is your budget?"},
			{Role: domain.RoleUser, Text: "$20 a day in the US"},
		}).
		Return(domain.Generation{Text: reply, Usage: domain.Usage{InputTokens: 900, OutputTokens: 300}}, nil).Once()
	f.convs.EXPECT().AppendTurns(mock.Anything, id, []domain.RawTurn{
		{Role: "user", Text: "$20 a day in the US"},
		{Role: "assistant", Text: reply},
	}).Return(nil).Once()

	resp, err := f.uc.Chat(context.Background(), port.ChatRequest{ConversationID: id, Message: "  $20 a day in the US "})
	require.NoError(t, err)
	assert.Equal(t, reply, resp.Reply)
	assert.Equal(t, 300, resp.Usage.OutputTokens)
	assert.Equal(t, domain.OutcomeValidated, resp.Extraction.Outcome)
	assert.Equal(t, "Summer Sale", resp.Extraction.Spec.Spec().Campaign.Name)
	assert.Empty(t, resp.ContextErrors)
}

// TestChatDegradesWithoutContext ensures failing context sources do not
// abort the request.
func TestChatDegradesWithoutContext(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.convs.EXPECT().GetConversation(mock.Anything, id, 20).Return(&domain.Conversation{ID: id}, nil).Once()
	f.store.EXPECT().ListProducts(mock.Anything, 5).Return(nil, errors.New("connection refused")).Once()
	f.platform.EXPECT().ListCampaigns(mock.Anything, 3).
		Return(nil, &domain.PlatformError{Code: 190, Message: "token expired"}).Once()
	f.model.EXPECT().Generate(mock.Anything, SystemPrompt, []domain.ContextBlock(nil), mock.Anything).
		Return(domain.Generation{Text: "Which country should we target?"}, nil).Once()
	f.convs.EXPECT().AppendTurns(mock.Anything, id, mock.Anything).Return(errors.New("disk full")).Once()

	resp, err := f.uc.Chat(context.Background(), port.ChatRequest{ConversationID: id, Message: "Make me a campaign"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoSpec, resp.Extraction.Outcome)
	assert.Equal(t, []string{domain.LabelStoreContext, domain.LabelCampaignContext}, resp.ContextErrors)
}

func TestChatErrors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Chat(context.Background(), port.ChatRequest{ConversationID: uuid.New(), Message: " \n"})
		assert.ErrorIs(t, err, port.ErrEmptyMessage)
	})
	t.Run("unknown conversation", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.convs.EXPECT().GetConversation(mock.Anything, id, 20).Return(nil, port.ErrConversationNotFound).Once()
		_, err := f.uc.Chat(context.Background(), port.ChatRequest{ConversationID: id, Message: "hi"})
		assert.ErrorIs(t, err, port.ErrConversationNotFound)
	})
	t.Run("model failure", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.convs.EXPECT().GetConversation(mock.Anything, id, 20).Return(&domain.Conversation{ID: id}, nil).Once()
		f.store.EXPECT().ListProducts(mock.Anything, 5).Return(nil, nil).Once()
		f.platform.EXPECT().ListCampaigns(mock.Anything, 3).Return(nil, nil).Once()
		modelErr := errors.New("quota exceeded")
		f.model.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.Generation{}, modelErr).Once()

		_, err := f.uc.Chat(context.Background(), port.ChatRequest{ConversationID: id, Message: "hi"})
		assert.ErrorIs(t, err, modelErr)
		assert.ErrorIs(t, err, port.ErrModelUnavailable)
	})
}

func TestExtractAndValidate(t *testing.T) {
	f := newFixture(t)

	got := f.uc.ExtractAndValidate("Tell me more about your audience.")
	assert.Equal(t, domain.OutcomeNoSpec, got.Outcome)
	assert.Nil(t, got.Rejection)

	got = f.uc.ExtractAndValidate("```json\n{\"campaign\":{\"name\":\"Go live\",\"objective\":\"OUTCOME_SALES\",\"status\":\"ACTIVE\"},\"ad_sets\":[{\"daily_budget\":100}]}\n```")
	assert.Equal(t, domain.OutcomeRejected, got.Outcome)
	require.NotNil(t, got.Rejection)
	assert.Equal(t, spec.RuleDraftStatus, got.Rejection.Rule)
	assert.True(t, got.Spec.IsZero())

	got = f.uc.ExtractAndValidate(summerSale)
	assert.Equal(t, domain.OutcomeValidated, got.Outcome)
	assert.Equal(t, domain.StatusPaused, got.Spec.Spec().Campaign.Status)
}

func TestExtractAndValidateSchemaMismatch(t *testing.T) {
	cases := map[string]string{
		"fractional budget":          "```json\n{\"campaign\":{\"name\":\"Summer\",\"objective\":\"OUTCOME_SALES\"},\"ad_sets\":[{\"daily_budget\":20.5}]}\n```",
		"active with bad categories": `{"campaign":{"name":"Summer","objective":"OUTCOME_SALES","status":"ACTIVE","special_ad_categories":"NONE"},"ad_sets":[{"daily_budget":2000}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			got := f.uc.ExtractAndValidate(raw)
			assert.Equal(t, domain.OutcomeRejected, got.Outcome)
			require.NotNil(t, got.Rejection)
			assert.Equal(t, spec.RuleSchema, got.Rejection.Rule)
			assert.Contains(t, got.Rejection.Reason, "cannot unmarshal")
			assert.True(t, got.Spec.IsZero())
		})
	}
}

func TestApprove(t *testing.T) {
	f := newFixture(t)
	f.platform.EXPECT().ListAdSets(mock.Anything, "120").Return([]domain.PlatformObject{
		{ID: "121", Type: domain.ObjectAdSet, Status: domain.StatusPaused},
		{ID: "122", Type: domain.ObjectAdSet, Status: domain.StatusPaused},
	}, nil).Once()
	f.platform.EXPECT().ListAds(mock.Anything, "121").Return([]domain.PlatformObject{
		{ID: "131", Type: domain.ObjectAd}, {ID: "132", Type: domain.ObjectAd},
	}, nil).Once()
	f.platform.EXPECT().ListAds(mock.Anything, "122").Return([]domain.PlatformObject{
		{ID: "133", Type: domain.ObjectAd},
	}, nil).Once()

	var order []string
	f.platform.EXPECT().UpdateStatus(mock.Anything, mock.Anything, domain.StatusActive).
		RunAndReturn(func(_ context.Context, id string, status domain.Status) (domain.PlatformObject, error) {
			order = append(order, id)
			return domain.PlatformObject{ID: id, Status: status}, nil
		}).Times(6)

	res, err := f.uc.Approve(context.Background(), " 120 ")
	require.NoError(t, err)
	assert.False(t, res.Failed())
	assert.Equal(t, []string{"131", "132", "121", "133", "122", "120"}, order)
	require.NotNil(t, res.Campaign)
	assert.Equal(t, domain.PlatformObject{ID: "120", Type: domain.ObjectCampaign, Status: domain.StatusActive}, *res.Campaign)
	assert.Len(t, res.AdSets, 2)
	assert.Len(t, res.Ads, 3)
	for _, ad := range res.Ads {
		assert.Equal(t, domain.ObjectAd, ad.Type)
		assert.Equal(t, domain.StatusActive, ad.Status)
	}

	_, err = f.uc.Approve(context.Background(), "")
	assert.ErrorIs(t, err, port.ErrEmptyCampaignID)
}

// TestApproveStopsAtFirstFailure leaves the campaign paused when a child
// cannot be activated.
func TestApproveStopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	f.platform.EXPECT().ListAdSets(mock.Anything, "120").
		Return([]domain.PlatformObject{{ID: "121"}, {ID: "122"}}, nil).Once()
	f.platform.EXPECT().ListAds(mock.Anything, "121").Return([]domain.PlatformObject{{ID: "131"}}, nil).Once()
	f.platform.EXPECT().ListAds(mock.Anything, "122").Return([]domain.PlatformObject{{ID: "133"}}, nil).Once()
	f.platform.EXPECT().UpdateStatus(mock.Anything, "131", domain.StatusActive).
		Return(domain.PlatformObject{ID: "131", Status: domain.StatusActive}, nil).Once()
	f.platform.EXPECT().UpdateStatus(mock.Anything, "121", domain.StatusActive).
		Return(domain.PlatformObject{ID: "121", Status: domain.StatusActive}, nil).Once()
	f.platform.EXPECT().UpdateStatus(mock.Anything, "133", domain.StatusActive).
		Return(domain.PlatformObject{}, &domain.PlatformError{Code: 1815433, Message: "ad is under review"}).Once()

	res, err := f.uc.Approve(context.Background(), "120")
	require.NoError(t, err)
	require.True(t, res.Failed())
	assert.Equal(t, domain.Step{Kind: domain.StepAd, AdSet: 1, Ad: 0}, *res.FailedAt)
	assert.Equal(t, 1815433, res.Error.Code)
	assert.Nil(t, res.Campaign)
	assert.Equal(t, []domain.PlatformObject{{ID: "121", Type: domain.ObjectAdSet, Status: domain.StatusActive}}, res.AdSets)
	assert.Equal(t, []domain.PlatformObject{{ID: "131", Type: domain.ObjectAd, Status: domain.StatusActive}}, res.Ads)
	f.platform.AssertNotCalled(t, "UpdateStatus", mock.Anything, "120", mock.Anything)
}

func TestApproveTreeUnreadable(t *testing.T) {
	f := newFixture(t)
	f.platform.EXPECT().ListAdSets(mock.Anything, "120").Return([]domain.PlatformObject{{ID: "121"}}, nil).Once()
	f.platform.EXPECT().ListAds(mock.Anything, "121").
		Return(nil, &domain.PlatformError{Code: 190, Message: "token expired"}).Once()

	res, err := f.uc.Approve(context.Background(), "120")
	var pe *domain.PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 190, pe.Code)
	assert.False(t, res.Failed())
	f.platform.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversationReadsWholeHistory(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.convs.EXPECT().GetConversation(mock.Anything, id, 0).Return(&domain.Conversation{ID: id}, nil).Once()

	conv, err := f.uc.Conversation(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, conv.ID)
}
