package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
)

type fakeModels struct {
	errs     []error
	text     string
	calls    int
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	_ string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.contents = contents
	f.config = config
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.text, genai.RoleModel),
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     120,
			CandidatesTokenCount: 40,
		},
	}, nil
}

func testModel(f *fakeModels) *Model {
	cfg := configs.Model{Name: "gemini-test", MaxRetries: 2, Backoff: time.Millisecond, MaxOutputTokens: 256, Temperature: 0.2}
	return newModel(f, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGenerateMapsRolesAndPrompt(t *testing.T) {
	f := &fakeModels{text: "Which country?"}
	m := testModel(f)

	blocks := []domain.ContextBlock{{Label: domain.LabelStoreContext, Data: json.RawMessage(`{"products":[]}`)}}
	turns := []domain.ConversationTurn{
		{Role: domain.RoleUser, Text: "Hello"},
		{Role: domain.RoleAssistant, Text: "Hi, what do you sell?"},
		{Role: domain.RoleUser, Text: "Sunglasses"},
	}
	gen, err := m.Generate(context.Background(), "Be helpful.", blocks, turns)
	require.NoError(t, err)

	assert.Equal(t, "Which country?", gen.Text)
	assert.Equal(t, domain.Usage{InputTokens: 120, OutputTokens: 40}, gen.Usage)

	require.Len(t, f.contents, 3)
	assert.Equal(t, string(genai.RoleUser), f.contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), f.contents[1].Role)
	assert.Equal(t, "Sunglasses", f.contents[2].Parts[0].Text)

	system := f.config.SystemInstruction.Parts[0].Text
	assert.Equal(t, domain.RenderSystemPrompt("Be helpful.", blocks), system)
	assert.Equal(t, int32(256), f.config.MaxOutputTokens)
	require.NotNil(t, f.config.Temperature)
	assert.InDelta(t, 0.2, *f.config.Temperature, 1e-6)
}

func TestGenerateRetriesRateLimits(t *testing.T) {
	f := &fakeModels{
		text: "ok",
		errs: []error{genai.APIError{Code: 429, Message: "quota"}, genai.APIError{Code: 503, Message: "overloaded"}},
	}

	gen, err := testModel(f).Generate(context.Background(), "p", nil, []domain.ConversationTurn{{Role: domain.RoleUser, Text: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", gen.Text)
	assert.Equal(t, 3, f.calls)
}

func TestGenerateGivesUpAfterMaxRetries(t *testing.T) {
	f := &fakeModels{errs: []error{
		genai.APIError{Code: 500}, genai.APIError{Code: 500}, genai.APIError{Code: 500}, genai.APIError{Code: 500},
	}}

	_, err := testModel(f).Generate(context.Background(), "p", nil, nil)
	var apiErr genai.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Code)
	assert.Equal(t, 3, f.calls)
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	f := &fakeModels{errs: []error{genai.APIError{Code: 400, Message: "bad request"}}}

	_, err := testModel(f).Generate(context.Background(), "p", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, f.calls)

	f = &fakeModels{errs: []error{errors.New("dial tcp: refused")}}
	_, err = testModel(f).Generate(context.Background(), "p", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, f.calls)
}

func TestGenerateEmptyReply(t *testing.T) {
	_, err := testModel(&fakeModels{}).Generate(context.Background(), "p", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyReply)
}
