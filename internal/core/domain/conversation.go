package domain

import "strings"

// Role is the author of a conversation turn as understood by the model API.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
)

// GreetingText is the synthetic opening turn used when a conversation would
// otherwise be empty or start with the assistant.
const GreetingText = "Hello"

const turnSeparator = "\n\n"

// RawTurn is a conversation entry as received from callers or storage. Role
// is free-form and Text may be blank.
type RawTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ConversationTurn is a normalized entry. Text is never blank.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ParseRole maps a free-form role onto the two roles the model accepts. The
// second return value is false when role is empty.
func ParseRole(role string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "":
		return "", false
	case "assistant", "model":
		return RoleAssistant, true
	default:
		// user, system notes and anything unknown speak as the user
		return RoleUser, true
	}
}

// NormalizeTurns turns raw history into a sequence that starts with the user
// and strictly alternates roles. Blank or role-less entries are dropped,
// consecutive entries from the same role are merged, and a greeting is
// prepended when the sequence would be empty or start with the assistant.
func NormalizeTurns(raw []RawTurn) []ConversationTurn {
	out := make([]ConversationTurn, 0, len(raw)+1)
	for _, rt := range raw {
		text := strings.TrimSpace(rt.Text)
		if text == "" {
			continue
		}
		role, ok := ParseRole(rt.Role)
		if !ok {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == role {
			out[n-1].Text += turnSeparator + text
			continue
		}
		out = append(out, ConversationTurn{Role: role, Text: text})
	}
	if len(out) == 0 || out[0].Role != RoleUser {
		out = append([]ConversationTurn{{Role: RoleUser, Text: GreetingText}}, out...)
	}
	return out
}
