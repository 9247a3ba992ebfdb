package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetMemberTools returns guild member lookup tools
func GetMemberTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolLookupGuildMember,
				Description: "Look up a guild member by their username or display name when you don't have a Discord mention with their ID. Returns the user's ID and display name. Use this when a user references someone by name without using @mention.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"username": map[string]interface{}{
							"type":        "string",
							"description": "The username or display name to search for (case-insensitive)",
						},
					},
					"required": []string{"username"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetGuildMembers,
				Description: "Get a list of guild members. Use this when you need to pick a random user or show available members for task assignment.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"limit": map[string]interface{}{
							"type":        "integer",
							"description": "Maximum number of members to return (default: 20)",
						},
					},
					"required": []string{},
				},
			},
		},
	}
}
