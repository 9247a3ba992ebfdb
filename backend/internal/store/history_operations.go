package store

import (
	"context"
	"fmt"
)

// ============================================================================
// Conversation History Operations
// ============================================================================

// AddMessage appends one durable conversation turn. Role must be "user"
// or "assistant"; the schema rejects anything else.
func (s *Store) AddMessage(ctx context.Context, userID, guildID, channelID, role, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (user_id, guild_id, channel_id, role, content)
		VALUES (?, ?, ?, ?, ?)`,
		userID, guildID, channelID, role, content)
	if err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}
	return nil
}

// GetRecentMessages returns the newest `limit` turns for the
// (user, guild, channel) scope, oldest first.
func (s *Store) GetRecentMessages(ctx context.Context, userID, guildID, channelID string, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, guild_id, channel_id, role, content, created_at
		FROM messages
		WHERE user_id = ? AND guild_id = ? AND channel_id = ?
		ORDER BY id DESC
		LIMIT ?`,
		userID, guildID, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.GuildID, &m.ChannelID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	// Query fetched newest-first; the prompt wants oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
