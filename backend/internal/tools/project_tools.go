package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetProjectTools returns project management tools
func GetProjectTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetProjects,
				Description: "Get a list of projects for the current guild, optionally filtered by status.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"status": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"active", "archived"},
							"description": "Filter projects by status (default: active)",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolCreateProject,
				Description: "Create a new project for the guild. Use this when a user wants to start a new project.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title": map[string]interface{}{
							"type":        "string",
							"description": "The title/name of the project",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "A description of what the project is about",
						},
					},
					"required": []string{"title"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetProjectInfo,
				Description: "Get detailed information about a specific project, including its tasks and notes.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to get info for",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolUpdateProject,
				Description: "Update a project's title or description.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to update",
						},
						"title": map[string]interface{}{
							"type":        "string",
							"description": "New title for the project (optional)",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "New description for the project (optional)",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolArchiveProject,
				Description: "Archive a project (mark it as no longer active).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to archive",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
	}
}
