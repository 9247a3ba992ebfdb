package tools

import (
	"context"
	"fmt"

	"brrr-bot/backend/internal/constants"
)

// ============================================================================
// Memory Tool Implementations
// ============================================================================

func (e *Executor) executeSaveMemory(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	key := argString(args, "key")
	value := argString(args, "value")
	memContext := argString(args, "context")

	if key == "" || value == "" {
		return &ToolResult{Success: false, Error: "key and value must be non-empty strings"}
	}

	if err := e.store.SetMemory(ctx, execCtx.UserID, execCtx.GuildID, key, value, memContext); err != nil {
		return errorResult(ToolSaveMemory, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Saved memory %q", key),
	}
}

func (e *Executor) executeGetUserMemories(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	userID := argString(args, "user_id")
	if userID == "" {
		userID = execCtx.UserID
	}

	memories, err := e.store.GetAllMemories(ctx, userID, execCtx.GuildID)
	if err != nil {
		return errorResult(ToolGetUserMemories, err)
	}

	// The persona override is prompt plumbing, not a fact about the user
	delete(memories, constants.PersonaMemoryKey)

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"memories": memories},
		Message: fmt.Sprintf("Found %d memories for <@%s>", len(memories), userID),
	}
}

func (e *Executor) executeDeleteMemory(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	key := argString(args, "key")
	if key == "" {
		return &ToolResult{Success: false, Error: "key must be a non-empty string"}
	}

	if err := e.store.DeleteMemory(ctx, execCtx.UserID, execCtx.GuildID, key); err != nil {
		return errorResult(ToolDeleteMemory, err)
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Deleted memory %q", key),
	}
}
