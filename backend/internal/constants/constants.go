package constants

// Agent constants
const (
	// BotName is the assistant's display name used in prompts
	BotName = "BRRR"

	// PersonaMemoryKey is the reserved memory key holding per-user custom
	// instructions. It is excluded from the generic memory listing and
	// rendered as its own prompt section instead.
	PersonaMemoryKey = "persona_instructions"

	// FallbackReply is what the user sees when a run aborts
	FallbackReply = "brrr... something went wrong! Please try again in a moment."
)

// Orchestration constants
const (
	// MaxToolRounds is the hard cap on model round-trips within one run.
	// Hitting it is not an error; the orchestrator answers with whatever
	// the tools returned so far.
	MaxToolRounds = 8

	// HistoryLimit is how many persisted turns the prompt includes
	HistoryLimit = 10
)

// Discord constants
const (
	// DiscordMaxMessageLength is the maximum character limit for Discord messages
	DiscordMaxMessageLength = 2000
)
