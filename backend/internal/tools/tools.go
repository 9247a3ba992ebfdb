package tools

import (
	"brrr-bot/backend/internal/adapter"
)

// Tool names - Project Tools
const (
	ToolGetProjects    = "get_projects"
	ToolCreateProject  = "create_project"
	ToolGetProjectInfo = "get_project_info"
	ToolUpdateProject  = "update_project"
	ToolArchiveProject = "archive_project"
)

// Tool names - Task Tools
const (
	ToolCreateTask   = "create_task"
	ToolGetTasks     = "get_tasks"
	ToolToggleTask   = "toggle_task"
	ToolUpdateTask   = "update_task"
	ToolDeleteTask   = "delete_task"
	ToolAssignTask   = "assign_task"
	ToolUnassignTask = "unassign_task"
	ToolGetUserTasks = "get_user_tasks"
)

// Tool names - Idea Tools
const (
	ToolAddIdea      = "add_idea"
	ToolGetIdeas     = "get_ideas"
	ToolDeleteIdea   = "delete_idea"
	ToolMarkIdeaUsed = "mark_idea_used"
)

// Tool names - Note Tools
const (
	ToolAddProjectNote  = "add_project_note"
	ToolGetProjectNotes = "get_project_notes"
	ToolAddTaskNote     = "add_task_note"
	ToolGetTaskNotes    = "get_task_notes"
)

// Tool names - Memory Tools
const (
	ToolSaveMemory      = "save_memory"
	ToolGetUserMemories = "get_user_memories"
	ToolDeleteMemory    = "delete_memory"
)

// Tool names - Guild Member Tools
const (
	ToolLookupGuildMember = "lookup_guild_member"
	ToolGetGuildMembers   = "get_guild_members"
)

// Tool names - GitHub Tools
const (
	ToolGitHubListFiles    = "github_list_files"
	ToolGitHubReadFile     = "github_read_file"
	ToolGitHubListBranches = "github_list_branches"
	ToolGitHubListPRs      = "github_list_prs"
	ToolGitHubCreatePR     = "github_create_pr"
	ToolGitHubUpdateFile   = "github_update_file"
)

// Tool names - Web Tools
const (
	ToolFetchWebpage = "fetch_webpage"
)

// AllTools returns every tool declaration exposed to the model
func AllTools() []adapter.Tool {
	tools := []adapter.Tool{}

	// Project Tools
	tools = append(tools, GetProjectTools()...)

	// Task Tools
	tools = append(tools, GetTaskTools()...)

	// Idea Tools
	tools = append(tools, GetIdeaTools()...)

	// Note Tools
	tools = append(tools, GetNoteTools()...)

	// Memory Tools
	tools = append(tools, GetMemoryTools()...)

	// Guild Member Tools
	tools = append(tools, GetMemberTools()...)

	// GitHub Tools
	tools = append(tools, GetGitHubTools()...)

	// Web Tools
	tools = append(tools, GetWebTools()...)

	return tools
}
