package main

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestMessageFiltering(t *testing.T) {
	botUserID := "bot-123"
	otherUserID := "user-456"

	tests := []struct {
		name        string
		message     *discordgo.MessageCreate
		shouldReact bool
	}{
		{
			name: "bot's own message is ignored",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: botUserID},
					Content: "Hello",
				},
			},
			shouldReact: false,
		},
		{
			name: "DM triggers a response",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID},
					Content: "Hello",
					GuildID: "",
				},
			},
			shouldReact: true,
		},
		{
			name: "mention triggers a response",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:   &discordgo.User{ID: otherUserID},
					Content:  "<@bot-123> Hello",
					GuildID:  "guild-123",
					Mentions: []*discordgo.User{{ID: botUserID}},
				},
			},
			shouldReact: true,
		},
		{
			name: "reply to the bot triggers a response",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:  &discordgo.User{ID: otherUserID},
					Content: "what about this?",
					GuildID: "guild-123",
					ReferencedMessage: &discordgo.Message{
						Author: &discordgo.User{ID: botUserID},
					},
				},
			},
			shouldReact: true,
		},
		{
			name: "unrelated guild chatter is ignored",
			message: &discordgo.MessageCreate{
				Message: &discordgo.Message{
					Author:   &discordgo.User{ID: otherUserID},
					Content:  "Hello",
					GuildID:  "guild-123",
					Mentions: []*discordgo.User{},
				},
			},
			shouldReact: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.message.Author.ID == botUserID {
				assert.False(t, tt.shouldReact)
				return
			}

			isDM := tt.message.GuildID == ""
			isMentioned := false
			for _, mention := range tt.message.Mentions {
				if mention.ID == botUserID {
					isMentioned = true
					break
				}
			}
			if !isMentioned && tt.message.ReferencedMessage != nil && tt.message.ReferencedMessage.Author != nil {
				isMentioned = tt.message.ReferencedMessage.Author.ID == botUserID
			}

			assert.Equal(t, tt.shouldReact, isDM || isMentioned)
		})
	}
}
