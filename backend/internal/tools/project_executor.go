package tools

import (
	"context"
	"fmt"
)

// ============================================================================
// Project Tool Implementations
// ============================================================================

func (e *Executor) executeGetProjects(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	status := argString(args, "status")

	projects, err := e.store.GetProjects(ctx, status)
	if err != nil {
		return errorResult(ToolGetProjects, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"projects": projects},
		Message: fmt.Sprintf("Found %d projects", len(projects)),
	}
}

func (e *Executor) executeCreateProject(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	title := argString(args, "title")
	description := argString(args, "description")

	project, err := e.store.CreateProject(ctx, title, description, execCtx.UserID)
	if err != nil {
		return errorResult(ToolCreateProject, err)
	}

	return &ToolResult{
		Success: true,
		Data:    project,
		Message: fmt.Sprintf("Created project %q with ID %d", project.Title, project.ID),
	}
}

func (e *Executor) executeGetProjectInfo(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	info, err := e.store.GetProjectInfo(ctx, projectID)
	if err != nil {
		return errorResult(ToolGetProjectInfo, err)
	}

	return &ToolResult{Success: true, Data: info}
}

func (e *Executor) executeUpdateProject(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	title := argString(args, "title")
	description := argString(args, "description")
	if title == "" && description == "" {
		return &ToolResult{Success: false, Error: "nothing to update: provide title or description"}
	}

	if err := e.store.UpdateProject(ctx, projectID, title, description); err != nil {
		return errorResult(ToolUpdateProject, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Updated project %d", projectID),
	}
}

func (e *Executor) executeArchiveProject(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	if err := e.store.ArchiveProject(ctx, projectID); err != nil {
		return errorResult(ToolArchiveProject, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Archived project %d", projectID),
	}
}
