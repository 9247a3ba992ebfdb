package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetIdeaTools returns idea pool tools
func GetIdeaTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolAddIdea,
				Description: "Add a new project idea to the idea pool.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title": map[string]interface{}{
							"type":        "string",
							"description": "The title of the idea",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "A detailed description of the idea",
						},
					},
					"required": []string{"title"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetIdeas,
				Description: "Get project ideas from the idea pool.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"unused_only": map[string]interface{}{
							"type":        "boolean",
							"description": "If true, only return ideas that haven't been used for a project yet",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolDeleteIdea,
				Description: "Delete an idea from the idea pool.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"idea_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the idea to delete",
						},
					},
					"required": []string{"idea_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolMarkIdeaUsed,
				Description: "Mark an idea as used when it becomes a project. Links the idea to the project ID.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"idea_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the idea to mark as used",
						},
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project created from this idea",
						},
					},
					"required": []string{"idea_id", "project_id"},
				},
			},
		},
	}
}
