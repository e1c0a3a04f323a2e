package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTurnsMergesSameRole(t *testing.T) {
	got := NormalizeTurns([]RawTurn{
		{Role: "user", Text: "a"},
		{Role: "user", Text: "b"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, RoleUser, got[0].Role)
	assert.Equal(t, "a\n\nb", got[0].Text)
}

func TestNormalizeTurnsDropsAndCoerces(t *testing.T) {
	got := NormalizeTurns([]RawTurn{
		{Role: "system", Text: "Store is closed on Sundays."},
		{Role: "user", Text: "Plan a campaign"},
		{Role: "", Text: "orphan"},
		{Role: "assistant", Text: "   "},
		{Role: "Assistant", Text: "What budget?"},
		{Role: "model", Text: "Daily or lifetime?"},
		{Role: "USER", Text: "20 dollars a day"},
	})

	assert.Equal(t, []ConversationTurn{
		{Role: RoleUser, Text: "Store is closed on Sundays.\n\nPlan a campaign"},
		{Role: RoleAssistant, Text: "What budget?\n\nDaily or lifetime?"},
		{Role: RoleUser, Text: "20 dollars a day"},
	}, got)
}

func TestNormalizeTurnsPrependsGreeting(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := NormalizeTurns(nil)
		assert.Equal(t, []ConversationTurn{{Role: RoleUser, Text: GreetingText}}, got)
	})
	t.Run("assistant first", func(t *testing.T) {
		got := NormalizeTurns([]RawTurn{{Role: "assistant", Text: "Hi, how can I help?"}})
		require.Len(t, got, 2)
		assert.Equal(t, ConversationTurn{Role: RoleUser, Text: GreetingText}, got[0])
		assert.Equal(t, RoleAssistant, got[1].Role)
	})
}

func TestNormalizeTurnsAlternates(t *testing.T) {
	roles := []string{"user", "assistant", "system", "", "model", "tool"}
	texts := []string{"", " ", "x", "hello", "\n"}
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		raw := make([]RawTurn, r.Intn(12))
		for j := range raw {
			raw[j] = RawTurn{Role: roles[r.Intn(len(roles))], Text: texts[r.Intn(len(texts))]}
		}
		got := NormalizeTurns(raw)
		require.NotEmpty(t, got)
		require.Equal(t, RoleUser, got[0].Role, "input %v", raw)
		for j := 1; j < len(got); j++ {
			require.NotEqual(t, got[j-1].Role, got[j].Role, "input %v", raw)
		}
		for _, turn := range got {
			require.NotEmpty(t, turn.Text)
		}
	}
}
