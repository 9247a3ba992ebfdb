package tools

import (
	"context"
	"fmt"
)

// ============================================================================
// Guild Member Tool Implementations
// ============================================================================

func (e *Executor) executeLookupGuildMember(_ context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.members == nil {
		return &ToolResult{Success: false, Error: "member lookup is not available"}
	}

	username := argString(args, "username")
	member, err := e.members.LookupMember(execCtx.GuildID, username)
	if err != nil {
		return errorResult(ToolLookupGuildMember, err)
	}

	return &ToolResult{
		Success: true,
		Data:    member,
		Message: fmt.Sprintf("Found member %s (ID %s)", member.DisplayName, member.ID),
	}
}

func (e *Executor) executeGetGuildMembers(_ context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.members == nil {
		return &ToolResult{Success: false, Error: "member lookup is not available"}
	}

	limit := argIntDefault(args, "limit", 20)
	members, err := e.members.ListMembers(execCtx.GuildID, limit)
	if err != nil {
		return errorResult(ToolGetGuildMembers, err)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"members": members},
		Message: fmt.Sprintf("Found %d members", len(members)),
	}
}
