package discord

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"brrr-bot/backend/internal/constants"
)

// sendReply sends content back to the channel, replying to the triggering
// message with the first chunk. Long content is split across messages
// without breaking code blocks.
func (h *Handler) sendReply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	content = formatForDiscord(content)
	if content == "" {
		return
	}

	chunks := splitMessage(content, constants.DiscordMaxMessageLength)
	for i, chunk := range chunks {
		var err error
		if i == 0 {
			_, err = s.ChannelMessageSendReply(m.ChannelID, chunk, m.Reference())
		} else {
			_, err = s.ChannelMessageSend(m.ChannelID, chunk)
		}
		if err != nil {
			h.logger.Error("Failed to send message chunk",
				zap.Error(err),
				zap.String("channel_id", m.ChannelID),
				zap.Int("chunk", i+1),
				zap.Int("total_chunks", len(chunks)),
			)
			return
		}

		// Brief pause between chunks to stay under the rate limit
		if i < len(chunks)-1 {
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// splitMessage splits content into chunks of at most maxLength without
// breaking code blocks: a chunk that would end inside a fence is closed
// with ``` and the fence reopened at the top of the next chunk.
// runeSafeCut returns the largest index <= max that does not land inside a
// multi-byte UTF-8 rune.
func runeSafeCut(s string, max int) int {
	if len(s) <= max {
		return len(s)
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return max
}

func splitMessage(content string, maxLength int) []string {
	if len(content) <= maxLength {
		return []string{content}
	}

	const fence = "```"
	var chunks []string
	var current strings.Builder
	openFence := ""

	flush := func() {
		text := current.String()
		current.Reset()
		if openFence != "" {
			text = strings.TrimRight(text, "\n") + "\n" + fence
			current.WriteString(openFence + "\n")
		}
		if text != "" {
			chunks = append(chunks, text)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		// Oversized single lines get hard-split at a rune boundary
		for len(line) > maxLength-8 {
			if current.Len() > 0 {
				flush()
			}
			cut := runeSafeCut(line, maxLength-8)
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}

		// +8 covers the newline plus a closing fence if one is needed
		if current.Len()+len(line)+8 > maxLength {
			flush()
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)

		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			if openFence == "" {
				openFence = strings.TrimSpace(line)
			} else {
				openFence = ""
			}
		}
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
