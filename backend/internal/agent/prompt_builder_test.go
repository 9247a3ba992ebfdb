package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brrr-bot/backend/internal/constants"
	"brrr-bot/backend/internal/store"
)

func TestBuildSystemPromptBareMinimum(t *testing.T) {
	prompt := BuildSystemPrompt("Alex", nil, nil)

	assert.Contains(t, prompt, "You are BRRR Bot")
	assert.Contains(t, prompt, "Memory System")
	assert.Contains(t, prompt, "You're chatting with Alex.")
	assert.NotContains(t, prompt, "What I remember about")
	assert.NotContains(t, prompt, "Recent conversation context")
	assert.NotContains(t, prompt, "Custom Instructions")
}

func TestBuildSystemPromptMemoryFacts(t *testing.T) {
	memories := map[string]store.Memory{
		"skill_python": {Key: "skill_python", Value: "advanced"},
		"timezone":     {Key: "timezone", Value: "UTC+2"},
	}

	prompt := BuildSystemPrompt("Alex", memories, nil)

	assert.Contains(t, prompt, "What I remember about Alex:")
	assert.Contains(t, prompt, "- skill_python: advanced")
	assert.Contains(t, prompt, "- timezone: UTC+2")
}

func TestBuildSystemPromptPersonaKeyBecomesCustomInstructions(t *testing.T) {
	memories := map[string]store.Memory{
		constants.PersonaMemoryKey: {Key: constants.PersonaMemoryKey, Value: "Talk like a pirate."},
		"skill_go":                 {Key: "skill_go", Value: "learning"},
	}

	prompt := BuildSystemPrompt("Alex", memories, nil)

	assert.Contains(t, prompt, "Custom Instructions")
	assert.Contains(t, prompt, "Talk like a pirate.")
	// The persona key must not leak into the remembered-facts list
	assert.NotContains(t, prompt, constants.PersonaMemoryKey)
	assert.Contains(t, prompt, "- skill_go: learning")
}

func TestBuildSystemPromptHistoryLabeled(t *testing.T) {
	history := []store.Message{
		{Role: "user", Content: "what projects are active?"},
		{Role: "assistant", Content: "Just one: brrr-site!"},
	}

	prompt := BuildSystemPrompt("Alex", nil, history)

	assert.Contains(t, prompt, "Recent conversation context (for reference only")
	assert.Contains(t, prompt, "Alex: what projects are active?")
	assert.Contains(t, prompt, "You (BRRR Bot): Just one: brrr-site!")

	// Oldest first, in the order the store returned them
	userIdx := strings.Index(prompt, "Alex: what projects")
	botIdx := strings.Index(prompt, "You (BRRR Bot):")
	assert.Less(t, userIdx, botIdx)
}

func TestBuildSystemPromptSectionOrder(t *testing.T) {
	memories := map[string]store.Memory{
		constants.PersonaMemoryKey: {Key: constants.PersonaMemoryKey, Value: "Be terse."},
		"interest_rust":            {Key: "interest_rust", Value: "curious"},
	}
	history := []store.Message{{Role: "user", Content: "hey there"}}

	prompt := BuildSystemPrompt("Alex", memories, history)

	persona := strings.Index(prompt, "Your personality:")
	mentions := strings.Index(prompt, "Discord Mention Format")
	custom := strings.Index(prompt, "Custom Instructions")
	facts := strings.Index(prompt, "What I remember about")
	recent := strings.Index(prompt, "Recent conversation context")
	closing := strings.Index(prompt, "Respond to their NEW message below.")

	for _, idx := range []int{persona, mentions, custom, facts, recent, closing} {
		require.NotEqual(t, -1, idx)
	}
	assert.True(t, persona < mentions && mentions < custom && custom < facts && facts < recent && recent < closing)
}
