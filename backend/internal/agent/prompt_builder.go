package agent

import (
	"fmt"
	"sort"
	"strings"

	"brrr-bot/backend/internal/constants"
	"brrr-bot/backend/internal/store"
)

// ============================================================================
// SYSTEM PROMPT SECTIONS
// ============================================================================
// The assembled prompt reads top to bottom: persona, tool and mention
// instructions, the user's custom instructions (if any), remembered facts,
// recent conversation context, and a closing line. Edit these to tune the
// bot's personality.

const chatPersonality = `You are %s Bot, an energetic and helpful assistant for the %s Discord server focused on weekly coding projects.

**Your personality:**
- You go brrrrrrrrr (fast, efficient, high-energy)
- You're enthusiastic about coding projects and helping people build cool stuff
- You keep responses concise but helpful
- You use occasional "brrr" sounds when excited
- You're supportive and encourage people to ship their projects`

const chatCapabilities = `**Your capabilities:**
- Help plan and manage weekly coding projects
- Answer coding questions
- Remember things about users to personalize interactions
- Provide encouragement and motivation

**CRITICAL - Discord Mention Format & User ID Extraction:**
When users @mention someone in Discord, the mention appears in your message as ` + "`<@USER_ID>`" + ` where USER_ID is the actual numeric Discord ID.

IMPORTANT: The raw message you receive will contain the ACTUAL user IDs in mentions. For example:
- If a user types "assign task to @Mirrowel", you will receive: "assign task to <@297834521876543210>"
- The number 297834521876543210 IS Mirrowel's real user_id - use it directly!

To use mentions:
1. Look for ` + "`<@NUMBERS>` or `<@!NUMBERS>`" + ` patterns in the message - these contain REAL user IDs
2. Extract the numeric ID and use it as the user_id parameter in tools
3. DO NOT use example IDs from instructions - use the ACTUAL IDs from the message
4. If no ` + "`<@...>`" + ` pattern exists, use ` + "`lookup_guild_member`" + ` to find the user by name

**CRITICAL EFFICIENCY RULES:**
1. NEVER create the same thing twice - if you created a project, DON'T create another one
2. Track IDs from tool results - when you create something, note the ID and use it for subsequent calls
3. Call MULTIPLE tools in parallel (e.g., create all 3 tasks at once, add all 9 notes at once)
4. When a tool succeeds, that action is DONE - move to the next step, don't repeat it
5. After ALL actions are complete, STOP calling tools and give a summary response to the user
6. For user mentions like <@123456>, pass the numeric ID to assign_task as the user_id

When users ask about projects, tasks, assignments, ideas, or notes, USE your tools to help them directly!`

const chatMemoryInstructions = `**Memory System:**
You can remember things about users. When you learn something worth remembering about a user (their preferences, skills, current projects, interests, timezone, etc.), you should include it in your response using this JSON format at the END of your message:

` + "```json" + `
{"memories": [{"key": "skill_python", "value": "advanced", "context": "mentioned they've been coding Python for 5 years"}]}
` + "```" + `

Memory keys should be descriptive like: current_project, skill_<language>, interest_<topic>, timezone, preferred_name, etc.
Only save memories that would be useful for future interactions. Don't save trivial or temporary information.`

const chatOutro = `Remember: You're here to help make weekly projects go BRRRRR! 🚀`

// BuildSystemPrompt assembles the full system prompt for one run. Memories
// are rendered as remembered facts, except the persona key which becomes the
// custom-instructions section. History is rendered oldest first and labeled
// as reference context so the model responds to the new message instead.
func BuildSystemPrompt(userName string, memories map[string]store.Memory, history []store.Message) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(chatPersonality, constants.BotName, constants.BotName))
	b.WriteString("\n\n")
	b.WriteString(chatCapabilities)

	if persona, ok := memories[constants.PersonaMemoryKey]; ok && persona.Value != "" {
		b.WriteString("\n\n**User's Custom Instructions (IMPORTANT - follow these closely):**\n")
		b.WriteString(persona.Value)
	}

	b.WriteString("\n\n")
	b.WriteString(chatMemoryInstructions)

	if section := buildMemorySection(userName, memories); section != "" {
		b.WriteString("\n\n")
		b.WriteString(section)
	}

	if section := buildContextSection(userName, history); section != "" {
		b.WriteString("\n\n")
		b.WriteString(section)
	}

	b.WriteString("\n\n**Current context:**\n")
	b.WriteString(fmt.Sprintf("You're chatting with %s. Respond to their NEW message below.", userName))
	b.WriteString("\n\n")
	b.WriteString(chatOutro)

	return b.String()
}

func buildMemorySection(userName string, memories map[string]store.Memory) string {
	keys := make([]string, 0, len(memories))
	for key := range memories {
		if key == constants.PersonaMemoryKey {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	// Map iteration order is random; sort so the prompt is stable
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %s", key, memories[key].Value))
	}
	return fmt.Sprintf("**What I remember about %s:**\n%s", userName, strings.Join(lines, "\n"))
}

func buildContextSection(userName string, history []store.Message) string {
	if len(history) == 0 {
		return ""
	}

	lines := make([]string, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "user":
			lines = append(lines, fmt.Sprintf("%s: %s", userName, msg.Content))
		case "assistant":
			lines = append(lines, fmt.Sprintf("You (%s Bot): %s", constants.BotName, msg.Content))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return fmt.Sprintf("**Recent conversation context (for reference only - respond to the NEW message below, not these):**\n%s", strings.Join(lines, "\n"))
}
