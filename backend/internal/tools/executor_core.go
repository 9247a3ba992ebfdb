package tools

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/store"
	apperrors "brrr-bot/backend/pkg/errors"
	"brrr-bot/backend/pkg/logger"
)

// ExecutionContext holds the identity scope for tool execution
type ExecutionContext struct {
	UserID    string
	GuildID   string
	ChannelID string
}

// ToolResult represents the result of a tool execution. Exactly one is
// produced per requested call, success or failure, and fed back to the
// model; a failing tool never aborts the run.
type ToolResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Member is a guild member as seen by member lookup tools
type Member struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// MemberDirectory resolves guild members. The Discord layer implements it;
// tests stub it.
type MemberDirectory interface {
	LookupMember(guildID, query string) (*Member, error)
	ListMembers(guildID string, limit int) ([]Member, error)
}

type handlerFunc func(ctx context.Context, execCtx *ExecutionContext, args map[string]interface{}) *ToolResult

// Executor validates tool calls against the registry and dispatches them
// to the store and external services
type Executor struct {
	store      *store.Store
	registry   *Registry
	httpClient *http.Client
	logger     *zap.Logger
	members    MemberDirectory
	github     *GitHubClient
	handlers   map[string]handlerFunc
}

// NewExecutor creates a new tool executor over the given store and registry
func NewExecutor(st *store.Store, registry *Registry) *Executor {
	e := &Executor{
		store:    st,
		registry: registry,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Get(),
	}
	e.handlers = e.buildHandlers()
	return e
}

// SetMemberDirectory wires in guild member resolution
func (e *Executor) SetMemberDirectory(md MemberDirectory) {
	e.members = md
}

// SetGitHubClient wires in the GitHub API client
func (e *Executor) SetGitHubClient(gh *GitHubClient) {
	e.github = gh
}

// Registry returns the registry this executor validates against
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Declarations returns the wire declarations of every registered tool
func (e *Executor) Declarations() []adapter.Tool {
	return e.registry.Declarations()
}

func (e *Executor) buildHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		// Project Tools
		ToolGetProjects:    e.executeGetProjects,
		ToolCreateProject:  e.executeCreateProject,
		ToolGetProjectInfo: e.executeGetProjectInfo,
		ToolUpdateProject:  e.executeUpdateProject,
		ToolArchiveProject: e.executeArchiveProject,

		// Task Tools
		ToolCreateTask:   e.executeCreateTask,
		ToolGetTasks:     e.executeGetTasks,
		ToolToggleTask:   e.executeToggleTask,
		ToolUpdateTask:   e.executeUpdateTask,
		ToolDeleteTask:   e.executeDeleteTask,
		ToolAssignTask:   e.executeAssignTask,
		ToolUnassignTask: e.executeUnassignTask,
		ToolGetUserTasks: e.executeGetUserTasks,

		// Idea Tools
		ToolAddIdea:      e.executeAddIdea,
		ToolGetIdeas:     e.executeGetIdeas,
		ToolDeleteIdea:   e.executeDeleteIdea,
		ToolMarkIdeaUsed: e.executeMarkIdeaUsed,

		// Note Tools
		ToolAddProjectNote:  e.executeAddProjectNote,
		ToolGetProjectNotes: e.executeGetProjectNotes,
		ToolAddTaskNote:     e.executeAddTaskNote,
		ToolGetTaskNotes:    e.executeGetTaskNotes,

		// Memory Tools
		ToolSaveMemory:      e.executeSaveMemory,
		ToolGetUserMemories: e.executeGetUserMemories,
		ToolDeleteMemory:    e.executeDeleteMemory,

		// Guild Member Tools
		ToolLookupGuildMember: e.executeLookupGuildMember,
		ToolGetGuildMembers:   e.executeGetGuildMembers,

		// GitHub Tools
		ToolGitHubListFiles:    e.executeGitHubListFiles,
		ToolGitHubReadFile:     e.executeGitHubReadFile,
		ToolGitHubListBranches: e.executeGitHubListBranches,
		ToolGitHubListPRs:      e.executeGitHubListPRs,
		ToolGitHubCreatePR:     e.executeGitHubCreatePR,
		ToolGitHubUpdateFile:   e.executeGitHubUpdateFile,

		// Web Tools
		ToolFetchWebpage: e.executeFetchWebpage,
	}
}

// Execute runs a tool call and returns the result. It never returns an
// error to the caller: unknown tools, bad arguments and failing store
// operations all come back as error results for the model to read.
func (e *Executor) Execute(ctx context.Context, execCtx *ExecutionContext, toolCall adapter.ToolCall) *ToolResult {
	e.logger.Debug("Executing tool",
		zap.String("tool", toolCall.Name),
		zap.String("user_id", execCtx.UserID),
		zap.String("guild_id", execCtx.GuildID),
	)

	if err := e.registry.Validate(toolCall.Name, toolCall.Arguments); err != nil {
		e.logger.Warn("Tool call rejected",
			zap.String("tool", toolCall.Name),
			zap.Error(err),
		)
		return &ToolResult{Success: false, Error: err.Error()}
	}

	handler, ok := e.handlers[toolCall.Name]
	if !ok {
		// Declared but not wired; treat like an unknown tool
		return &ToolResult{Success: false, Error: apperrors.NewToolNotFound(toolCall.Name).Error()}
	}

	return handler(ctx, execCtx, toolCall.Arguments)
}

// errorResult converts a store or service failure into an error result
// carrying a short diagnostic string
func errorResult(toolName string, err error) *ToolResult {
	return &ToolResult{
		Success: false,
		Error:   apperrors.NewToolExecutionFailed(toolName, err).Error(),
	}
}

// Argument helpers. Tool arguments arrive as JSON-decoded
// map[string]interface{}, so numbers are float64 and ids sometimes come
// back as strings.

func argString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func argBool(args map[string]interface{}, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func argInt64(args map[string]interface{}, key string) (int64, bool) {
	switch v := args[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

func argIntDefault(args map[string]interface{}, key string, def int) int {
	if n, ok := argInt64(args, key); ok {
		return int(n)
	}
	return def
}
