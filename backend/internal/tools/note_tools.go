package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetNoteTools returns project and task note tools
func GetNoteTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolAddProjectNote,
				Description: "Add a note to a project for tracking updates, decisions, or general information.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to add the note to",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "The content of the note",
						},
					},
					"required": []string{"project_id", "content"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetProjectNotes,
				Description: "Get all notes for a specific project.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to get notes for",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolAddTaskNote,
				Description: "Add a note to a task for tracking progress, blockers, or additional context.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to add the note to",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "The content of the note",
						},
					},
					"required": []string{"task_id", "content"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetTaskNotes,
				Description: "Get all notes for a specific task.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to get notes for",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
	}
}
