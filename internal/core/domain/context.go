package domain

import (
	"encoding/json"
	"strings"
)

// ContextBlock is an opaque JSON fragment handed to the model alongside the
// conversation, such as the store catalogue or the campaigns that already
// exist. Label names the tag the fragment is wrapped in.
type ContextBlock struct {
	Label string
	Data  json.RawMessage
}

const (
	LabelStoreContext    = "store_context"
	LabelCampaignContext = "campaign_context"
)

// RenderSystemPrompt places every non-empty context block under its tag ahead
// of the system prompt.
func RenderSystemPrompt(systemPrompt string, blocks []ContextBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b.Label == "" || len(b.Data) == 0 {
			continue
		}
		sb.WriteString("<")
		sb.WriteString(b.Label)
		sb.WriteString(">\n")
		sb.Write(b.Data)
		sb.WriteString("\n</")
		sb.WriteString(b.Label)
		sb.WriteString(">\n\n")
	}
	sb.WriteString(systemPrompt)
	return sb.String()
}

// Usage reports token consumption of a single generation.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Generation is the raw reply of the language model.
type Generation struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}
