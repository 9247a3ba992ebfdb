package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetWebTools returns web access tools
func GetWebTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolFetchWebpage,
				Description: "Fetch a webpage and return its readable text content. Use this when a user shares a link or asks about a specific page.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"url": map[string]interface{}{
							"type":        "string",
							"description": "The full URL of the page to fetch (http or https)",
						},
					},
					"required": []string{"url"},
				},
			},
		},
	}
}
