package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ============================================================================
// Memory Operations
// ============================================================================

// GetAllMemories returns every memory fact for (user, guild), keyed by
// memory key. An empty map means the user has no memories; a read failure
// is an error, never an empty map.
func (s *Store) GetAllMemories(ctx context.Context, userID, guildID string) (map[string]Memory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value, context FROM memories
		WHERE user_id = ? AND guild_id = ?
		ORDER BY key`,
		userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	memories := make(map[string]Memory)
	for rows.Next() {
		var m Memory
		if err := rows.Scan(&m.Key, &m.Value, &m.Context); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories[m.Key] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read memories: %w", err)
	}

	return memories, nil
}

// SetMemory upserts a memory fact. An existing key for the same
// (user, guild) is overwritten, never duplicated.
func (s *Store) SetMemory(ctx context.Context, userID, guildID, key, value, memContext string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO memories (user_id, guild_id, key, value, context, updated_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT (user_id, guild_id, key)
		DO UPDATE SET value = excluded.value, context = excluded.context,
			updated_at = excluded.updated_at`,
		userID, guildID, key, value, memContext)
	if err != nil {
		return fmt.Errorf("failed to set memory %q: %w", key, err)
	}

	s.logger.Debug("memory saved",
		zap.String("user_id", userID),
		zap.String("key", key))
	return nil
}

// DeleteMemory removes a single memory fact. Deleting an absent key is a
// no-op, not an error.
func (s *Store) DeleteMemory(ctx context.Context, userID, guildID, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM memories WHERE user_id = ? AND guild_id = ? AND key = ?`,
		userID, guildID, key)
	if err != nil {
		return fmt.Errorf("failed to delete memory %q: %w", key, err)
	}
	return nil
}

// ClearMemories removes every memory fact for (user, guild) and reports
// how many were removed.
func (s *Store) ClearMemories(ctx context.Context, userID, guildID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM memories WHERE user_id = ? AND guild_id = ?`,
		userID, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear memories: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
