package tools

import (
	"context"
	"fmt"
)

// ============================================================================
// Note Tool Implementations
// ============================================================================

func (e *Executor) executeAddProjectNote(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}
	content := argString(args, "content")

	id, err := e.store.AddProjectNote(ctx, projectID, content, execCtx.UserID)
	if err != nil {
		return errorResult(ToolAddProjectNote, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"note_id": id},
		Message: fmt.Sprintf("Added note to project %d", projectID),
	}
}

func (e *Executor) executeGetProjectNotes(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	notes, err := e.store.GetProjectNotes(ctx, projectID)
	if err != nil {
		return errorResult(ToolGetProjectNotes, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"notes": notes},
		Message: fmt.Sprintf("Found %d notes", len(notes)),
	}
}

func (e *Executor) executeAddTaskNote(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}
	content := argString(args, "content")

	id, err := e.store.AddTaskNote(ctx, taskID, content, execCtx.UserID)
	if err != nil {
		return errorResult(ToolAddTaskNote, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"note_id": id},
		Message: fmt.Sprintf("Added note to task %d", taskID),
	}
}

func (e *Executor) executeGetTaskNotes(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}

	notes, err := e.store.GetTaskNotes(ctx, taskID)
	if err != nil {
		return errorResult(ToolGetTaskNotes, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"notes": notes},
		Message: fmt.Sprintf("Found %d notes", len(notes)),
	}
}
