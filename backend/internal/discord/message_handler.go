package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"brrr-bot/backend/internal/agent"
	"brrr-bot/backend/internal/store"
	"brrr-bot/backend/pkg/logger"
)

const commandPrefix = "!"

// Handler routes incoming Discord messages to either the command layer or
// the chat orchestrator
type Handler struct {
	orch   *agent.Orchestrator
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates a new Discord message handler. orch may be nil when
// chat is disabled; commands still work against the store.
func NewHandler(orch *agent.Orchestrator, st *store.Store) *Handler {
	return &Handler{
		orch:   orch,
		store:  st,
		logger: logger.Get(),
	}
}

// HandleMessage processes one incoming Discord message
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Never respond to ourselves
	if m.Author.ID == s.State.User.ID {
		return
	}

	if strings.HasPrefix(m.Content, commandPrefix) {
		h.handleCommand(s, m)
		return
	}

	isDM := m.GuildID == ""
	isMentioned := false
	for _, mention := range m.Mentions {
		if mention.ID == s.State.User.ID {
			isMentioned = true
			break
		}
	}

	// Replies to the bot's own messages count as mentions
	if !isMentioned && m.ReferencedMessage != nil && m.ReferencedMessage.Author != nil {
		isMentioned = m.ReferencedMessage.Author.ID == s.State.User.ID
	}

	if !isDM && !isMentioned {
		return
	}

	// Strip only our own mention; other mentions stay so the model can read
	// the user IDs out of them
	content := strings.ReplaceAll(m.Content, "<@"+s.State.User.ID+">", "")
	content = strings.ReplaceAll(content, "<@!"+s.State.User.ID+">", "")
	content = strings.TrimSpace(content)
	if content == "" {
		content = "Hello!"
	}

	// Other bots can talk to us too; tag their messages so the model knows
	if m.Author.Bot {
		content = fmt.Sprintf("[This message is from another bot named %s] %s", displayName(m), content)
	}

	if h.orch == nil {
		h.logger.Debug("Chat is disabled, ignoring mention",
			zap.String("user_id", m.Author.ID),
		)
		return
	}

	h.logger.Info("Processing chat message",
		zap.String("user_id", m.Author.ID),
		zap.String("channel_id", m.ChannelID),
		zap.Bool("is_dm", isDM),
	)

	// Best effort; chat works without the indicator
	_ = s.ChannelTyping(m.ChannelID)

	result, err := h.orch.Run(context.Background(), &agent.Request{
		UserID:    m.Author.ID,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserName:  displayName(m),
		Content:   content,
	})
	if err != nil {
		h.logger.Error("Chat run failed",
			zap.Error(err),
			zap.String("user_id", m.Author.ID),
		)
		h.sendReply(s, m, "brrr... something went wrong! Try again? 🔧")
		return
	}

	h.sendReply(s, m, result.Reply)
}

// displayName prefers the guild nickname over the account username
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
