package store

import (
	"context"
	"fmt"
)

// ============================================================================
// Idea Operations
// ============================================================================

// AddIdea drops a new idea into the idea box and returns its id
func (s *Store) AddIdea(ctx context.Context, text, authorID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO ideas (text, author_id) VALUES (?, ?)`,
		text, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to add idea: %w", err)
	}
	return res.LastInsertId()
}

// GetIdeas returns ideas, newest first. Used ideas are included only when
// includeUsed is set.
func (s *Store) GetIdeas(ctx context.Context, includeUsed bool) ([]Idea, error) {
	query := `
		SELECT id, text, author_id, used, created_at
		FROM ideas ORDER BY id DESC`
	if !includeUsed {
		query = `
		SELECT id, text, author_id, used, created_at
		FROM ideas WHERE used = 0 ORDER BY id DESC`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	var ideas []Idea
	for rows.Next() {
		var i Idea
		if err := rows.Scan(&i.ID, &i.Text, &i.AuthorID, &i.Used, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	return ideas, rows.Err()
}

// DeleteIdea removes an idea
func (s *Store) DeleteIdea(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ideas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete idea %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("idea %d not found", id)
	}
	return nil
}

// MarkIdeaUsed flags an idea as picked up, keeping it for the record
func (s *Store) MarkIdeaUsed(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE ideas SET used = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark idea %d used: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("idea %d not found", id)
	}
	return nil
}
