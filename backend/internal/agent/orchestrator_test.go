package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/constants"
	"brrr-bot/backend/internal/store"
	"brrr-bot/backend/internal/tools"
)

// mockModel scripts the adapter: each Generate call pops the next response
// and records the message sequence it was given.
type mockModel struct {
	responses []*adapter.Response
	err       error
	requests  [][]adapter.Message
}

func (m *mockModel) Generate(ctx context.Context, messages []adapter.Message, toolDecls []adapter.Tool) (*adapter.Response, error) {
	m.requests = append(m.requests, messages)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return &adapter.Response{Content: "done"}, nil
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func newTestOrchestrator(t *testing.T, model ModelClient) (*Orchestrator, *store.Store) {
	t.Helper()

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	executor := tools.NewExecutor(st, tools.NewDefaultRegistry())
	return NewOrchestrator(st, model, executor), st
}

func testRequest() *Request {
	return &Request{
		UserID:    "user-1",
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		UserName:  "Alex",
		Content:   "hey bot",
	}
}

func TestRunPlainReply(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{{Content: "brrr! hey Alex!"}}}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "brrr! hey Alex!", result.Reply)
	assert.Equal(t, 0, result.ToolRounds)
	assert.NotEmpty(t, result.RunID)

	// Both turns logged
	history, err := st.GetRecentMessages(context.Background(), "user-1", "guild-1", "chan-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hey bot", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "brrr! hey Alex!", history[1].Content)
}

func TestRunToolRound(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{
		{ToolCalls: []adapter.ToolCall{{
			ID:   "call-1",
			Name: tools.ToolCreateProject,
			Arguments: map[string]interface{}{
				"title":       "brrr-site",
				"description": "landing page",
			},
		}}},
		{Content: "Created brrr-site for you!"},
	}}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Created brrr-site for you!", result.Reply)
	assert.Equal(t, 1, result.ToolRounds)

	// The tool actually ran
	projects, err := st.GetProjects(context.Background(), "active")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "brrr-site", projects[0].Title)

	// Second model call saw the assistant tool request and the tool result
	require.Len(t, model.requests, 2)
	second := model.requests[1]
	require.Len(t, second, 4)
	assert.Equal(t, adapter.RoleAssistant, second[2].Role)
	require.Len(t, second[2].ToolCalls, 1)
	assert.Equal(t, adapter.RoleTool, second[3].Role)
	assert.Equal(t, "call-1", second[3].ToolCallID)
	assert.Contains(t, second[3].Content, "brrr-site")
}

func TestRunSiblingCallsKeepOrder(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{
		{ToolCalls: []adapter.ToolCall{
			{ID: "call-a", Name: tools.ToolCreateProject, Arguments: map[string]interface{}{"title": "alpha"}},
			{ID: "call-b", Name: tools.ToolCreateProject, Arguments: map[string]interface{}{"title": "beta"}},
		}},
		{Content: "Both created!"},
	}}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, result.ToolRounds)

	projects, err := st.GetProjects(context.Background(), "active")
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	// Tool messages come back in call order regardless of execution order
	second := model.requests[1]
	require.Len(t, second, 5)
	assert.Equal(t, "call-a", second[3].ToolCallID)
	assert.Contains(t, second[3].Content, "alpha")
	assert.Equal(t, "call-b", second[4].ToolCallID)
	assert.Contains(t, second[4].Content, "beta")
}

func TestRunToolFailureStaysContained(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{
		{ToolCalls: []adapter.ToolCall{{
			ID:        "call-1",
			Name:      tools.ToolGetProjectInfo,
			Arguments: map[string]interface{}{"project_id": float64(999)},
		}}},
		{Content: "That project doesn't exist, sorry!"},
	}}
	orch, _ := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "That project doesn't exist, sorry!", result.Reply)
	second := model.requests[1]
	assert.Contains(t, second[3].Content, "ERROR")
}

func TestRunRoundLimit(t *testing.T) {
	// The model never stops asking for tools
	responses := make([]*adapter.Response, 0, constants.MaxToolRounds+1)
	for i := 0; i <= constants.MaxToolRounds; i++ {
		responses = append(responses, &adapter.Response{
			ToolCalls: []adapter.ToolCall{{
				ID:        fmt.Sprintf("call-%d", i),
				Name:      tools.ToolGetProjects,
				Arguments: map[string]interface{}{},
			}},
		})
	}
	model := &mockModel{responses: responses}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, constants.MaxToolRounds, result.ToolRounds)
	assert.Len(t, model.requests, constants.MaxToolRounds+1)
	// Best-effort reply built from the completed tool work
	assert.Contains(t, result.Reply, "[get_projects]")

	// The exchange is still logged
	history, err := st.GetRecentMessages(context.Background(), "user-1", "guild-1", "chan-1", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRunMemoryExtraction(t *testing.T) {
	reply := "Python for 5 years, nice!\n```json\n" +
		`{"memories": [{"key": "skill_python", "value": "advanced", "context": "5 years"}]}` + "\n```"
	model := &mockModel{responses: []*adapter.Response{{Content: reply}}}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Python for 5 years, nice!", result.Reply)
	assert.Equal(t, 1, result.MemoriesSaved)

	memories, err := st.GetAllMemories(context.Background(), "user-1", "guild-1")
	require.NoError(t, err)
	require.Contains(t, memories, "skill_python")
	assert.Equal(t, "advanced", memories["skill_python"].Value)

	// The logged assistant turn is the cleaned reply, not the raw one
	history, err := st.GetRecentMessages(context.Background(), "user-1", "guild-1", "chan-1", 10)
	require.NoError(t, err)
	assert.Equal(t, "Python for 5 years, nice!", history[1].Content)
}

func TestRunTransportFailureFallsBack(t *testing.T) {
	model := &mockModel{err: fmt.Errorf("connection refused")}
	orch, st := newTestOrchestrator(t, model)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, constants.FallbackReply, result.Reply)
	assert.Equal(t, 0, result.MemoriesSaved)

	// Nothing persisted on a failed run
	history, err := st.GetRecentMessages(context.Background(), "user-1", "guild-1", "chan-1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
	memories, err := st.GetAllMemories(context.Background(), "user-1", "guild-1")
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestRunStoreReadFailureFallsBack(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{{Content: "hi there!"}}}

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Close())

	executor := tools.NewExecutor(st, tools.NewDefaultRegistry())
	orch := NewOrchestrator(st, model, executor)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	// The model never sees a prompt stripped of its memories
	assert.Equal(t, constants.FallbackReply, result.Reply)
	assert.Equal(t, 0, result.MemoriesSaved)
	assert.Empty(t, model.requests)
}

// turnDropStore fails the assistant history insert while letting everything
// else through.
type turnDropStore struct {
	*store.Store
}

func (s *turnDropStore) AddMessage(ctx context.Context, userID, guildID, channelID, role, content string) error {
	if role == "assistant" {
		return fmt.Errorf("database is locked")
	}
	return s.Store.AddMessage(ctx, userID, guildID, channelID, role, content)
}

func TestRunSkipsMemoriesWhenTurnNotRecorded(t *testing.T) {
	reply := "Noted!\n```json\n{\"memories\": [{\"key\": \"timezone\", \"value\": \"UTC+2\"}]}\n```"
	model := &mockModel{responses: []*adapter.Response{{Content: reply}}}

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	executor := tools.NewExecutor(st, tools.NewDefaultRegistry())
	orch := NewOrchestrator(&turnDropStore{Store: st}, model, executor)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Noted!", result.Reply)

	// No memory survives a turn that never reached history
	assert.Equal(t, 0, result.MemoriesSaved)
	memories, err := st.GetAllMemories(context.Background(), "user-1", "guild-1")
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestRunPromptCarriesMemoriesAndHistory(t *testing.T) {
	model := &mockModel{responses: []*adapter.Response{{Content: "ok"}}}
	orch, st := newTestOrchestrator(t, model)

	ctx := context.Background()
	require.NoError(t, st.SetMemory(ctx, "user-1", "guild-1", "timezone", "UTC+2", ""))
	require.NoError(t, st.AddMessage(ctx, "user-1", "guild-1", "chan-1", "user", "earlier question"))

	_, err := orch.Run(ctx, testRequest())
	require.NoError(t, err)

	require.Len(t, model.requests, 1)
	system := model.requests[0][0]
	assert.Equal(t, adapter.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "- timezone: UTC+2")
	assert.Contains(t, system.Content, "Alex: earlier question")
}
