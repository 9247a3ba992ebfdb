package tools

import (
	"context"
	"fmt"
)

// ============================================================================
// Task Tool Implementations
// ============================================================================

func (e *Executor) executeCreateTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}
	label := argString(args, "label")

	task, err := e.store.CreateTask(ctx, projectID, label)
	if err != nil {
		return errorResult(ToolCreateTask, err)
	}

	return &ToolResult{
		Success: true,
		Data:    task,
		Message: fmt.Sprintf("Created task %d in project %d", task.ID, projectID),
	}
}

func (e *Executor) executeGetTasks(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	tasks, err := e.store.GetTasks(ctx, projectID)
	if err != nil {
		return errorResult(ToolGetTasks, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"tasks": tasks},
		Message: fmt.Sprintf("Found %d tasks", len(tasks)),
	}
}

func (e *Executor) executeToggleTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}

	task, err := e.store.ToggleTask(ctx, taskID)
	if err != nil {
		return errorResult(ToolToggleTask, err)
	}

	state := "open"
	if task.Done {
		state = "done"
	}
	return &ToolResult{
		Success: true,
		Data:    task,
		Message: fmt.Sprintf("Task %d is now %s", taskID, state),
	}
}

func (e *Executor) executeUpdateTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}
	label := argString(args, "label")

	if err := e.store.UpdateTask(ctx, taskID, label); err != nil {
		return errorResult(ToolUpdateTask, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Updated task %d", taskID),
	}
}

func (e *Executor) executeDeleteTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}

	if err := e.store.DeleteTask(ctx, taskID); err != nil {
		return errorResult(ToolDeleteTask, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Deleted task %d", taskID),
	}
}

func (e *Executor) executeAssignTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}
	userID := argString(args, "user_id")
	if userID == "" {
		return &ToolResult{Success: false, Error: "user_id must be a non-empty string"}
	}

	if err := e.store.AssignTask(ctx, taskID, userID); err != nil {
		return errorResult(ToolAssignTask, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Assigned task %d to <@%s>", taskID, userID),
	}
}

func (e *Executor) executeUnassignTask(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	taskID, ok := argInt64(args, "task_id")
	if !ok {
		return &ToolResult{Success: false, Error: "task_id must be an integer"}
	}

	if err := e.store.UnassignTask(ctx, taskID); err != nil {
		return errorResult(ToolUnassignTask, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Unassigned task %d", taskID),
	}
}

func (e *Executor) executeGetUserTasks(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	userID := argString(args, "user_id")
	includeCompleted := argBool(args, "include_completed")

	tasks, err := e.store.GetUserTasks(ctx, userID, includeCompleted)
	if err != nil {
		return errorResult(ToolGetUserTasks, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"tasks": tasks},
		Message: fmt.Sprintf("Found %d tasks for <@%s>", len(tasks), userID),
	}
}
