package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brrr-bot/backend/internal/constants"
)

// ============================================================================
// TEXT COMMANDS
// ============================================================================
// Memory and persona management works even when chat is disabled, so these
// are plain prefix commands instead of going through the model.

func (h *Handler) handleCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	fields := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(fields) == 0 {
		return
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	h.logger.Debug("Handling command",
		zap.String("command", command),
		zap.String("user_id", m.Author.ID),
	)

	ctx := context.Background()

	switch command {
	case "memories":
		h.commandMemories(ctx, s, m)
	case "remember":
		h.commandRemember(ctx, s, m, args)
	case "forget":
		h.commandForget(ctx, s, m, args)
	case "clearmemories":
		h.commandClearMemories(ctx, s, m)
	case "persona":
		h.commandPersona(ctx, s, m, strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(m.Content, commandPrefix+fields[0]), " ")))
	case "help":
		h.commandHelp(s, m)
	}
	// Unknown commands are ignored; they may belong to another bot
}

var fieldTitleCaser = cases.Title(language.English)

// memoryFieldName turns a snake_case memory key into an embed field title,
// e.g. "favorite_language" becomes "Favorite Language".
func memoryFieldName(key string) string {
	return fieldTitleCaser.String(strings.ReplaceAll(key, "_", " "))
}

func (h *Handler) commandMemories(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	memories, err := h.store.GetAllMemories(ctx, m.Author.ID, m.GuildID)
	if err != nil {
		h.logger.Error("Failed to load memories", zap.Error(err))
		h.sendReply(s, m, "brrr... couldn't read my memory banks. Try again?")
		return
	}

	delete(memories, constants.PersonaMemoryKey)
	if len(memories) == 0 {
		h.sendReply(s, m, "I don't have any memories about you yet! Chat with me and I'll remember things. 🧠")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🧠 What I Remember About %s", displayName(m)),
		Color: 0x9b59b6,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use !forget <key> to remove a memory",
		},
	}

	count := 0
	for key, memory := range memories {
		// Discord caps embeds at 25 fields
		if count >= 25 {
			break
		}
		value := memory.Value
		if memory.Context != "" {
			value += fmt.Sprintf("\n*%s*", memory.Context)
		}
		// Discord caps field values at 1024 characters
		value = value[:runeSafeCut(value, 1024)]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   memoryFieldName(key),
			Value:  value,
			Inline: true,
		})
		count++
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		h.logger.Error("Failed to send memories embed", zap.Error(err))
	}
}

func (h *Handler) commandRemember(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		h.sendReply(s, m, "Usage: `!remember <key> <value>`")
		return
	}

	key := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")

	if err := h.store.SetMemory(ctx, m.Author.ID, m.GuildID, key, value, "Manually added by user"); err != nil {
		h.logger.Error("Failed to set memory", zap.Error(err))
		h.sendReply(s, m, "brrr... couldn't save that. Try again?")
		return
	}
	h.sendReply(s, m, fmt.Sprintf("✅ I'll remember: `%s` = `%s`", key, value))
}

func (h *Handler) commandForget(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		h.sendReply(s, m, "Usage: `!forget <key>`")
		return
	}
	key := strings.ToLower(args[0])

	if err := h.store.DeleteMemory(ctx, m.Author.ID, m.GuildID, key); err != nil {
		h.logger.Error("Failed to delete memory", zap.Error(err))
		h.sendReply(s, m, "brrr... couldn't forget that. Try again?")
		return
	}
	h.sendReply(s, m, fmt.Sprintf("✅ Forgot: `%s`", key))
}

func (h *Handler) commandClearMemories(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	count, err := h.store.ClearMemories(ctx, m.Author.ID, m.GuildID)
	if err != nil {
		h.logger.Error("Failed to clear memories", zap.Error(err))
		h.sendReply(s, m, "brrr... couldn't clear my memory banks. Try again?")
		return
	}
	h.sendReply(s, m, fmt.Sprintf("🧹 Cleared %d memories! Fresh start. 🧠", count))
}

func (h *Handler) commandPersona(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	switch {
	case text == "":
		memories, err := h.store.GetAllMemories(ctx, m.Author.ID, m.GuildID)
		if err != nil {
			h.logger.Error("Failed to load persona", zap.Error(err))
			h.sendReply(s, m, "brrr... couldn't read my memory banks. Try again?")
			return
		}
		if persona, ok := memories[constants.PersonaMemoryKey]; ok {
			h.sendReply(s, m, fmt.Sprintf("Current persona instructions:\n> %s", persona.Value))
		} else {
			h.sendReply(s, m, "No persona set. Use `!persona <instructions>` to customize how I talk to you.")
		}

	case strings.EqualFold(text, "clear"):
		if err := h.store.DeleteMemory(ctx, m.Author.ID, m.GuildID, constants.PersonaMemoryKey); err != nil {
			h.logger.Error("Failed to clear persona", zap.Error(err))
			h.sendReply(s, m, "brrr... couldn't clear that. Try again?")
			return
		}
		h.sendReply(s, m, "✅ Persona cleared. Back to my default self!")

	default:
		if err := h.store.SetMemory(ctx, m.Author.ID, m.GuildID, constants.PersonaMemoryKey, text, "Set via !persona"); err != nil {
			h.logger.Error("Failed to set persona", zap.Error(err))
			h.sendReply(s, m, "brrr... couldn't save that. Try again?")
			return
		}
		h.sendReply(s, m, "✅ Persona updated! I'll talk to you like that from now on.")
	}
}

func (h *Handler) commandHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	help := `**BRRR Bot commands:**
` + "`!memories`" + ` - see what I remember about you
` + "`!remember <key> <value>`" + ` - manually add a memory
` + "`!forget <key>`" + ` - remove one memory
` + "`!clearmemories`" + ` - wipe everything I remember about you
` + "`!persona <instructions>`" + ` - customize how I talk to you (` + "`!persona clear`" + ` to reset)

Or just @mention me to chat! I can manage projects, tasks, ideas, and notes.`
	h.sendReply(s, m, help)
}
