package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetMemoryTools returns user memory tools
func GetMemoryTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolSaveMemory,
				Description: "Save a memory about the current user. Use this to remember important information like skills, preferences, project interests, timezone, etc.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"key": map[string]interface{}{
							"type":        "string",
							"description": "A descriptive key for the memory (e.g., 'skill_python', 'preferred_name', 'timezone', 'current_project')",
						},
						"value": map[string]interface{}{
							"type":        "string",
							"description": "The value to remember",
						},
						"context": map[string]interface{}{
							"type":        "string",
							"description": "Context about why this was remembered (optional)",
						},
					},
					"required": []string{"key", "value"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetUserMemories,
				Description: "Retrieve all memories stored about a specific user. Useful when you need to recall what you know about someone.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"user_id": map[string]interface{}{
							"type":        "string",
							"description": "Discord user ID to get memories for. If not provided, gets memories for the current user.",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolDeleteMemory,
				Description: "Delete a specific memory about the current user.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"key": map[string]interface{}{
							"type":        "string",
							"description": "The key of the memory to delete",
						},
					},
					"required": []string{"key"},
				},
			},
		},
	}
}
