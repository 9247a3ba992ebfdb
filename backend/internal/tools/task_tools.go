package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetTaskTools returns task management and assignment tools
func GetTaskTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolCreateTask,
				Description: "Create a new task for a specific project.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to add the task to",
						},
						"label": map[string]interface{}{
							"type":        "string",
							"description": "The description of the task",
						},
					},
					"required": []string{"project_id", "label"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetTasks,
				Description: "Get all tasks for a specific project.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the project to get tasks for",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolToggleTask,
				Description: "Toggle a task's completion status (mark as done or undone).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to toggle",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolUpdateTask,
				Description: "Update a task's label.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to update",
						},
						"label": map[string]interface{}{
							"type":        "string",
							"description": "New label/description for the task",
						},
					},
					"required": []string{"task_id", "label"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolDeleteTask,
				Description: "Delete a task from a project.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to delete",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolAssignTask,
				Description: "Assign a task to a specific user. Extract the user_id from Discord mentions - when a user is @mentioned, it appears as <@USER_ID> in the message. Use ONLY the numeric ID.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to assign",
						},
						"user_id": map[string]interface{}{
							"type":        "string",
							"description": "The Discord user ID (numeric string extracted from <@USER_ID> mention format). Example: '123456789012345678'",
						},
					},
					"required": []string{"task_id", "user_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolUnassignTask,
				Description: "Remove the assignment from a task (unassign from any user).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"task_id": map[string]interface{}{
							"type":        "integer",
							"description": "The ID of the task to unassign",
						},
					},
					"required": []string{"task_id"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetUserTasks,
				Description: "Get all tasks assigned to a specific user in the current guild. Extract user_id from Discord mentions (<@USER_ID>).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"user_id": map[string]interface{}{
							"type":        "string",
							"description": "The Discord user ID (numeric string extracted from <@USER_ID> mention). Example: '123456789012345678'",
						},
						"include_completed": map[string]interface{}{
							"type":        "boolean",
							"description": "Whether to include completed tasks (default: false)",
						},
					},
					"required": []string{"user_id"},
				},
			},
		},
	}
}
