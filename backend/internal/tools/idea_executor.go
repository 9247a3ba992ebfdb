package tools

import (
	"context"
	"fmt"
)

// ============================================================================
// Idea Tool Implementations
// ============================================================================

func (e *Executor) executeAddIdea(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	title := argString(args, "title")
	description := argString(args, "description")

	text := title
	if description != "" {
		text = fmt.Sprintf("%s: %s", title, description)
	}

	id, err := e.store.AddIdea(ctx, text, execCtx.UserID)
	if err != nil {
		return errorResult(ToolAddIdea, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"idea_id": id},
		Message: fmt.Sprintf("Added idea %d: %s", id, title),
	}
}

func (e *Executor) executeGetIdeas(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	unusedOnly := argBool(args, "unused_only")

	ideas, err := e.store.GetIdeas(ctx, !unusedOnly)
	if err != nil {
		return errorResult(ToolGetIdeas, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"ideas": ideas},
		Message: fmt.Sprintf("Found %d ideas", len(ideas)),
	}
}

func (e *Executor) executeDeleteIdea(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	ideaID, ok := argInt64(args, "idea_id")
	if !ok {
		return &ToolResult{Success: false, Error: "idea_id must be an integer"}
	}

	if err := e.store.DeleteIdea(ctx, ideaID); err != nil {
		return errorResult(ToolDeleteIdea, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Deleted idea %d", ideaID),
	}
}

func (e *Executor) executeMarkIdeaUsed(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	ideaID, ok := argInt64(args, "idea_id")
	if !ok {
		return &ToolResult{Success: false, Error: "idea_id must be an integer"}
	}
	projectID, ok := argInt64(args, "project_id")
	if !ok {
		return &ToolResult{Success: false, Error: "project_id must be an integer"}
	}

	if err := e.store.MarkIdeaUsed(ctx, ideaID); err != nil {
		return errorResult(ToolMarkIdeaUsed, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Marked idea %d as used by project %d", ideaID, projectID),
	}
}
