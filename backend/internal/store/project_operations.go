package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// ============================================================================
// Project Operations
// ============================================================================

// CreateProject creates a new active project and returns it
func (s *Store) CreateProject(ctx context.Context, title, description, creatorID string) (*Project, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (title, description, creator_id)
		VALUES (?, ?, ?)`,
		title, description, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read project id: %w", err)
	}

	s.logger.Info("project created",
		zap.Int64("project_id", id),
		zap.String("title", title))

	return s.GetProject(ctx, id)
}

// GetProject returns one project by id
func (s *Store) GetProject(ctx context.Context, id int64) (*Project, error) {
	var p Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, creator_id, archived, created_at
		FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.CreatorID, &p.Archived, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &p, nil
}

// GetProjects returns projects filtered by status ("active", "archived",
// or "" for active), newest first
func (s *Store) GetProjects(ctx context.Context, status string) ([]Project, error) {
	archived := 0
	if status == "archived" {
		archived = 1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, creator_id, archived, created_at
		FROM projects WHERE archived = ?
		ORDER BY id DESC`, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatorID, &p.Archived, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectInfo returns a project with its tasks and notes
func (s *Store) GetProjectInfo(ctx context.Context, id int64) (*ProjectInfo, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.GetTasks(ctx, id)
	if err != nil {
		return nil, err
	}

	notes, err := s.GetProjectNotes(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProjectInfo{Project: *project, Tasks: tasks, Notes: notes}, nil
}

// UpdateProject updates the title and/or description of a project.
// Empty arguments leave the corresponding field untouched.
func (s *Store) UpdateProject(ctx context.Context, id int64, title, description string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET
			title = CASE WHEN ? != '' THEN ? ELSE title END,
			description = CASE WHEN ? != '' THEN ? ELSE description END
		WHERE id = ?`,
		title, title, description, description, id)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %d not found", id)
	}
	return nil
}

// ArchiveProject marks a project as archived; it disappears from
// GetProjects but its tasks and notes remain readable by id.
func (s *Store) ArchiveProject(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET archived = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to archive project %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %d not found", id)
	}

	s.logger.Info("project archived", zap.Int64("project_id", id))
	return nil
}
