package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ============================================================================
// Task Operations
// ============================================================================

// CreateTask adds a checklist item to a project and returns it
func (s *Store) CreateTask(ctx context.Context, projectID int64, label string) (*Task, error) {
	// Verify the project exists; FK constraints alone would allow inserts
	// against archived projects, which is fine, but a bogus id should fail
	// with a readable message rather than a constraint error.
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (project_id, label) VALUES (?, ?)`,
		projectID, label)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read task id: %w", err)
	}

	return s.GetTask(ctx, id)
}

// GetTask returns one task by id
func (s *Store) GetTask(ctx context.Context, id int64) (*Task, error) {
	var t Task
	err := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, label, done, assignee_id, created_at
		FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.ProjectID, &t.Label, &t.Done, &t.AssigneeID, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &t, nil
}

// GetTasks returns all tasks of a project, oldest first
func (s *Store) GetTasks(ctx context.Context, projectID int64) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, label, done, assignee_id, created_at
		FROM tasks WHERE project_id = ?
		ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Label, &t.Done, &t.AssigneeID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetUserTasks returns tasks assigned to a user across projects. Completed
// tasks are included only when includeCompleted is set.
func (s *Store) GetUserTasks(ctx context.Context, userID string, includeCompleted bool) ([]Task, error) {
	query := `
		SELECT id, project_id, label, done, assignee_id, created_at
		FROM tasks WHERE assignee_id = ? AND done = 0
		ORDER BY id`
	if includeCompleted {
		query = `
		SELECT id, project_id, label, done, assignee_id, created_at
		FROM tasks WHERE assignee_id = ?
		ORDER BY id`
	}
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Label, &t.Done, &t.AssigneeID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ToggleTask flips a task's done flag and returns the new state
func (s *Store) ToggleTask(ctx context.Context, id int64) (*Task, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET done = 1 - done WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("task %d not found", id)
	}
	return s.GetTask(ctx, id)
}

// UpdateTask changes a task's label
func (s *Store) UpdateTask(ctx context.Context, id int64, label string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET label = ? WHERE id = ?`, label, id)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

// DeleteTask removes a task and its notes
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

// AssignTask sets the task's assignee
func (s *Store) AssignTask(ctx context.Context, id int64, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET assignee_id = ? WHERE id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to assign task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

// UnassignTask clears the task's assignee
func (s *Store) UnassignTask(ctx context.Context, id int64) error {
	return s.AssignTask(ctx, id, "")
}
