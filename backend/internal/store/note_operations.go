package store

import (
	"context"
	"fmt"
)

// ============================================================================
// Note Operations
// ============================================================================

// AddProjectNote attaches a note to a project
func (s *Store) AddProjectNote(ctx context.Context, projectID int64, text, authorID string) (int64, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO project_notes (project_id, text, author_id) VALUES (?, ?, ?)`,
		projectID, text, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to add project note: %w", err)
	}
	return res.LastInsertId()
}

// GetProjectNotes returns a project's notes, oldest first
func (s *Store) GetProjectNotes(ctx context.Context, projectID int64) ([]Note, error) {
	return s.queryNotes(ctx, `
		SELECT id, text, author_id, created_at
		FROM project_notes WHERE project_id = ? ORDER BY id`, projectID)
}

// AddTaskNote attaches a note to a task
func (s *Store) AddTaskNote(ctx context.Context, taskID int64, text, authorID string) (int64, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO task_notes (task_id, text, author_id) VALUES (?, ?, ?)`,
		taskID, text, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to add task note: %w", err)
	}
	return res.LastInsertId()
}

// GetTaskNotes returns a task's notes, oldest first
func (s *Store) GetTaskNotes(ctx context.Context, taskID int64) ([]Note, error) {
	return s.queryNotes(ctx, `
		SELECT id, text, author_id, created_at
		FROM task_notes WHERE task_id = ? ORDER BY id`, taskID)
}

func (s *Store) queryNotes(ctx context.Context, query string, id int64) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Text, &n.AuthorID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
