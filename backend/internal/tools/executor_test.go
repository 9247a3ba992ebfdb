package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/constants"
	"brrr-bot/backend/internal/store"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewExecutor(st, NewDefaultRegistry())
}

func testExecCtx() *ExecutionContext {
	return &ExecutionContext{UserID: "u1", GuildID: "g1", ChannelID: "c1"}
}

func call(name string, args map[string]interface{}) adapter.ToolCall {
	return adapter.ToolCall{ID: "call-1", Name: name, Arguments: args}
}

func TestExecuteUnknownTool(t *testing.T) {
	e := newTestExecutor(t)

	result := e.Execute(context.Background(), testExecCtx(), call("launch_rocket", map[string]interface{}{}))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown tool")
}

func TestExecuteMissingRequiredArgument(t *testing.T) {
	e := newTestExecutor(t)
	ctx := context.Background()

	result := e.Execute(ctx, testExecCtx(), call(ToolCreateProject, map[string]interface{}{}))
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "title")

	// Validation failure must not have touched the store
	listed := e.Execute(ctx, testExecCtx(), call(ToolGetProjects, map[string]interface{}{}))
	require.True(t, listed.Success)
	data := listed.Data.(map[string]interface{})
	assert.Empty(t, data["projects"])
}

func TestExecuteProjectAndTaskFlow(t *testing.T) {
	e := newTestExecutor(t)
	ctx := context.Background()
	execCtx := testExecCtx()

	created := e.Execute(ctx, execCtx, call(ToolCreateProject, map[string]interface{}{
		"title":       "Widget",
		"description": "build the widget",
	}))
	require.True(t, created.Success, created.Error)
	project := created.Data.(*store.Project)
	assert.Equal(t, "u1", project.CreatorID)

	task := e.Execute(ctx, execCtx, call(ToolCreateTask, map[string]interface{}{
		"project_id": float64(project.ID),
		"label":      "design API",
	}))
	require.True(t, task.Success, task.Error)

	assigned := e.Execute(ctx, execCtx, call(ToolAssignTask, map[string]interface{}{
		"task_id": float64(task.Data.(*store.Task).ID),
		"user_id": "u2",
	}))
	require.True(t, assigned.Success, assigned.Error)

	info := e.Execute(ctx, execCtx, call(ToolGetProjectInfo, map[string]interface{}{
		"project_id": float64(project.ID),
	}))
	require.True(t, info.Success, info.Error)
	projectInfo := info.Data.(*store.ProjectInfo)
	require.Len(t, projectInfo.Tasks, 1)
	assert.Equal(t, "u2", projectInfo.Tasks[0].AssigneeID)
}

func TestExecuteToolFailureIsContained(t *testing.T) {
	e := newTestExecutor(t)

	// Valid arguments, nonexistent project: the store error comes back as
	// an error result, never a panic or a Go error
	result := e.Execute(context.Background(), testExecCtx(), call(ToolCreateTask, map[string]interface{}{
		"project_id": float64(999),
		"label":      "orphan",
	}))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not found")
}

func TestExecuteMemoryTools(t *testing.T) {
	e := newTestExecutor(t)
	ctx := context.Background()
	execCtx := testExecCtx()

	saved := e.Execute(ctx, execCtx, call(ToolSaveMemory, map[string]interface{}{
		"key":     "timezone",
		"value":   "UTC+2",
		"context": "mentioned in chat",
	}))
	require.True(t, saved.Success, saved.Error)

	// The persona key never shows up in listings
	require.NoError(t, e.store.SetMemory(ctx, "u1", "g1", constants.PersonaMemoryKey, "talk like a pirate", ""))

	listed := e.Execute(ctx, execCtx, call(ToolGetUserMemories, map[string]interface{}{}))
	require.True(t, listed.Success)
	memories := listed.Data.(map[string]interface{})["memories"].(map[string]store.Memory)
	require.Len(t, memories, 1)
	assert.Equal(t, "UTC+2", memories["timezone"].Value)

	deleted := e.Execute(ctx, execCtx, call(ToolDeleteMemory, map[string]interface{}{"key": "timezone"}))
	require.True(t, deleted.Success)

	listed = e.Execute(ctx, execCtx, call(ToolGetUserMemories, map[string]interface{}{}))
	require.True(t, listed.Success)
	assert.Empty(t, listed.Data.(map[string]interface{})["memories"])
}

type stubDirectory struct {
	members []Member
}

func (d *stubDirectory) LookupMember(_, query string) (*Member, error) {
	for i := range d.members {
		if d.members[i].Username == query || d.members[i].DisplayName == query {
			return &d.members[i], nil
		}
	}
	return nil, fmt.Errorf("no member matching %q", query)
}

func (d *stubDirectory) ListMembers(_ string, limit int) ([]Member, error) {
	if limit > len(d.members) {
		limit = len(d.members)
	}
	return d.members[:limit], nil
}

func TestExecuteMemberTools(t *testing.T) {
	e := newTestExecutor(t)
	ctx := context.Background()

	// Without a directory wired in, member tools degrade gracefully
	result := e.Execute(ctx, testExecCtx(), call(ToolLookupGuildMember, map[string]interface{}{"username": "sam"}))
	assert.False(t, result.Success)

	e.SetMemberDirectory(&stubDirectory{members: []Member{
		{ID: "42", Username: "sam", DisplayName: "Sam"},
		{ID: "43", Username: "alex", DisplayName: "Alex"},
	}})

	found := e.Execute(ctx, testExecCtx(), call(ToolLookupGuildMember, map[string]interface{}{"username": "sam"}))
	require.True(t, found.Success, found.Error)
	assert.Equal(t, "42", found.Data.(*Member).ID)

	list := e.Execute(ctx, testExecCtx(), call(ToolGetGuildMembers, map[string]interface{}{"limit": float64(1)}))
	require.True(t, list.Success)
	assert.Len(t, list.Data.(map[string]interface{})["members"], 1)
}

func TestExecuteFetchWebpage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><head><title>Test Page</title></head>
			<body><script>ignored()</script><h1>Heading</h1><p>Some body text.</p></body></html>`)
	}))
	defer srv.Close()

	e := newTestExecutor(t)
	result := e.Execute(context.Background(), testExecCtx(), call(ToolFetchWebpage, map[string]interface{}{
		"url": srv.URL,
	}))

	require.True(t, result.Success, result.Error)
	data := result.Data.(map[string]interface{})
	assert.Equal(t, "Test Page", data["title"])
	assert.Contains(t, data["text"], "Some body text.")
	assert.NotContains(t, data["text"], "ignored()")
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab...", truncate("abcd", 2))

	// "é" is two bytes; an odd cap must back off to the rune boundary
	got := truncate(strings.Repeat("é", 100), 7)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ééé...", got)
}

func TestExecuteFetchWebpageRejectsBadURL(t *testing.T) {
	e := newTestExecutor(t)

	result := e.Execute(context.Background(), testExecCtx(), call(ToolFetchWebpage, map[string]interface{}{
		"url": "ftp://example.com/file",
	}))

	assert.False(t, result.Success)
}
