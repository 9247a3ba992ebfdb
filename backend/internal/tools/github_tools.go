package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// GetGitHubTools returns GitHub repository tools
func GetGitHubTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubListFiles,
				Description: "List files in a GitHub repository at a specific path.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
						"path": map[string]interface{}{
							"type":        "string",
							"description": "Path within the repository (default: root)",
						},
						"branch": map[string]interface{}{
							"type":        "string",
							"description": "Branch name (default: main branch)",
						},
					},
					"required": []string{"repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubReadFile,
				Description: "Read the contents of a file from a GitHub repository.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
						"path": map[string]interface{}{
							"type":        "string",
							"description": "Path to the file in the repository",
						},
						"branch": map[string]interface{}{
							"type":        "string",
							"description": "Branch name (default: main branch)",
						},
					},
					"required": []string{"repo", "path"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubListBranches,
				Description: "List all branches in a GitHub repository.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
					},
					"required": []string{"repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubListPRs,
				Description: "List pull requests in a GitHub repository.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
						"state": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"open", "closed", "all"},
							"description": "State of PRs to list (default: open)",
						},
					},
					"required": []string{"repo"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubCreatePR,
				Description: "Create a pull request in a GitHub repository.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
						"title": map[string]interface{}{
							"type":        "string",
							"description": "Title of the pull request",
						},
						"body": map[string]interface{}{
							"type":        "string",
							"description": "Description of the pull request",
						},
						"head": map[string]interface{}{
							"type":        "string",
							"description": "The name of the branch where changes are implemented",
						},
						"base": map[string]interface{}{
							"type":        "string",
							"description": "The name of the branch to merge into (default: main)",
						},
					},
					"required": []string{"repo", "title", "head"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGitHubUpdateFile,
				Description: "Update a file in a GitHub repository (creates a commit).",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"repo": map[string]interface{}{
							"type":        "string",
							"description": "Repository in format 'owner/repo'",
						},
						"path": map[string]interface{}{
							"type":        "string",
							"description": "Path to the file in the repository",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "New content for the file",
						},
						"message": map[string]interface{}{
							"type":        "string",
							"description": "Commit message",
						},
						"branch": map[string]interface{}{
							"type":        "string",
							"description": "Branch to commit to (default: main)",
						},
					},
					"required": []string{"repo", "path", "content", "message"},
				},
			},
		},
	}
}
