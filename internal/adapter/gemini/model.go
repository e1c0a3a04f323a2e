package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/genai"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var ErrEmptyReply = errors.New("model returned an empty reply")

// generator is the part of *genai.Models the adapter uses.
type generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Model calls the Gemini API. It implements port.Model.
type Model struct {
	models          generator
	name            string
	timeout         time.Duration
	maxRetries      uint64
	backoff         time.Duration
	maxOutputTokens int32
	temperature     float32
	logger          *slog.Logger
}

// NewModel creates a Gemini client with the key supplied by creds.
func NewModel(ctx context.Context, cfg configs.Model, creds port.Credentials, logger *slog.Logger) (*Model, error) {
	key, err := creds.ModelAPIKey(ctx)
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newModel(client.Models, cfg, logger), nil
}

func newModel(models generator, cfg configs.Model, logger *slog.Logger) *Model {
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}
	return &Model{
		models:          models,
		name:            cfg.Name,
		timeout:         cfg.Timeout,
		maxRetries:      cfg.MaxRetries,
		backoff:         backoff,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
		logger:          logger,
	}
}

// Generate sends the rendered system prompt and the conversation. Rate
// limits and server errors are retried with exponential backoff.
func (m *Model) Generate(
	ctx context.Context,
	systemPrompt string,
	blocks []domain.ContextBlock,
	turns []domain.ConversationTurn,
) (domain.Generation, error) {
	contents := buildContents(turns)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(domain.RenderSystemPrompt(systemPrompt, blocks), genai.RoleUser),
		Temperature:       genai.Ptr(m.temperature),
	}
	if m.maxOutputTokens > 0 {
		config.MaxOutputTokens = m.maxOutputTokens
	}

	var (
		resp    *genai.GenerateContentResponse
		attempt int
	)
	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(m.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		callCtx, cancel := m.withTimeout(ctx)
		defer cancel()

		var callErr error
		resp, callErr = m.models.GenerateContent(callCtx, m.name, contents, config)
		if callErr != nil {
			if retryable(callErr) {
				m.logger.Warn("model call failed, retrying",
					slog.Int("attempt", attempt),
					slog.Any("error", callErr),
				)
				return retry.RetryableError(callErr)
			}
			return callErr
		}
		return nil
	})
	if err != nil {
		return domain.Generation{}, err
	}

	text := resp.Text()
	if text == "" {
		return domain.Generation{}, ErrEmptyReply
	}
	gen := domain.Generation{Text: text}
	if u := resp.UsageMetadata; u != nil {
		gen.Usage = domain.Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
		}
	}
	return gen, nil
}

func (m *Model) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

func buildContents(turns []domain.ConversationTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	return contents
}

func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return false
}
