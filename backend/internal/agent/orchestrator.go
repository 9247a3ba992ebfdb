package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"brrr-bot/backend/internal/adapter"
	"brrr-bot/backend/internal/constants"
	"brrr-bot/backend/internal/store"
	"brrr-bot/backend/internal/tools"
	"brrr-bot/backend/pkg/logger"
)

// ModelClient is the slice of the LLM adapter the orchestrator needs
type ModelClient interface {
	Generate(ctx context.Context, messages []adapter.Message, toolDecls []adapter.Tool) (*adapter.Response, error)
}

// ToolRunner executes validated tool calls and exposes the tool catalog
type ToolRunner interface {
	Declarations() []adapter.Tool
	Execute(ctx context.Context, execCtx *tools.ExecutionContext, toolCall adapter.ToolCall) *tools.ToolResult
}

// RunStore is the slice of the store one run touches
type RunStore interface {
	GetAllMemories(ctx context.Context, userID, guildID string) (map[string]store.Memory, error)
	GetRecentMessages(ctx context.Context, userID, guildID, channelID string, limit int) ([]store.Message, error)
	AddMessage(ctx context.Context, userID, guildID, channelID, role, content string) error
	SetMemory(ctx context.Context, userID, guildID, key, value, memContext string) error
}

// Orchestrator drives one chat run: it assembles the prompt, loops the model
// through tool rounds, and finalizes the reply into history and memories.
type Orchestrator struct {
	store    RunStore
	llm      ModelClient
	executor ToolRunner
	guard    *ChannelGuard
	logger   *zap.Logger
}

// NewOrchestrator creates a new chat orchestrator
func NewOrchestrator(st RunStore, llm ModelClient, executor ToolRunner) *Orchestrator {
	return &Orchestrator{
		store:    st,
		llm:      llm,
		executor: executor,
		guard:    NewChannelGuard(),
		logger:   logger.Get(),
	}
}

// Request is one incoming chat message with its Discord scope
type Request struct {
	UserID    string
	GuildID   string
	ChannelID string
	UserName  string
	Content   string
}

// Result is the outcome of a run. Reply is always safe to send; a transport
// failure produces the fallback reply instead of an error.
type Result struct {
	RunID         string
	Reply         string
	ToolRounds    int
	MemoriesSaved int
}

// Run executes a full conversational run for one message. Runs in the same
// channel are serialized; runs in different channels proceed concurrently.
func (o *Orchestrator) Run(ctx context.Context, req *Request) (*Result, error) {
	release := o.guard.Acquire(req.ChannelID)
	defer release()

	runID := uuid.NewString()
	log := o.logger.With(
		zap.String("run_id", runID),
		zap.String("user_id", req.UserID),
		zap.String("channel_id", req.ChannelID),
	)
	log.Debug("Starting chat run")

	// Assemble. A failed read aborts the run: answering without the stored
	// memories or history would contradict what the bot has already been told.
	memories, err := o.store.GetAllMemories(ctx, req.UserID, req.GuildID)
	if err != nil {
		log.Error("Failed to load memories, aborting run", zap.Error(err))
		return &Result{RunID: runID, Reply: constants.FallbackReply}, nil
	}
	history, err := o.store.GetRecentMessages(ctx, req.UserID, req.GuildID, req.ChannelID, constants.HistoryLimit)
	if err != nil {
		log.Error("Failed to load history, aborting run", zap.Error(err))
		return &Result{RunID: runID, Reply: constants.FallbackReply}, nil
	}

	messages := []adapter.Message{
		{Role: adapter.RoleSystem, Content: BuildSystemPrompt(req.UserName, memories, history)},
		{Role: adapter.RoleUser, Content: req.Content},
	}

	decls := o.executor.Declarations()
	execCtx := &tools.ExecutionContext{
		UserID:    req.UserID,
		GuildID:   req.GuildID,
		ChannelID: req.ChannelID,
	}

	var toolSummaries []string
	var reply string
	rounds := 0

	for {
		resp, err := o.llm.Generate(ctx, messages, decls)
		if err != nil {
			// A failed model call aborts the run: nothing is persisted and
			// the user gets the canned fallback.
			log.Error("Model call failed, aborting run", zap.Error(err))
			return &Result{RunID: runID, Reply: constants.FallbackReply, ToolRounds: rounds}, nil
		}

		if len(resp.ToolCalls) == 0 {
			reply = resp.Content
			break
		}

		if rounds >= constants.MaxToolRounds {
			log.Warn("Tool round limit reached, forcing a reply",
				zap.Int("rounds", rounds),
				zap.Int("pending_calls", len(resp.ToolCalls)),
			)
			reply = bestEffortReply(toolSummaries)
			break
		}
		rounds++

		messages = append(messages, adapter.Message{
			Role:      adapter.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		results := o.executeRound(ctx, execCtx, resp.ToolCalls)
		for i, toolCall := range resp.ToolCalls {
			result := results[i]
			if result.Success {
				toolSummaries = append(toolSummaries, fmt.Sprintf("[%s]: %s", toolCall.Name, result.Message))
			} else {
				toolSummaries = append(toolSummaries, fmt.Sprintf("[%s] ERROR: %s", toolCall.Name, result.Error))
				log.Warn("Tool call failed",
					zap.String("tool", toolCall.Name),
					zap.String("error", result.Error),
				)
			}
			messages = append(messages, adapter.Message{
				Role:       adapter.RoleTool,
				ToolCallID: toolCall.ID,
				Content:    toolMessageContent(result),
			})
		}
	}

	clean, extracted := ExtractMemories(reply)
	if clean == "" {
		clean = bestEffortReply(toolSummaries)
	}

	// Turns are logged before memories. The user turn is best effort; the
	// assistant turn must land for the memory writes below to run.
	if err := o.store.AddMessage(ctx, req.UserID, req.GuildID, req.ChannelID, "user", req.Content); err != nil {
		log.Warn("Failed to log user turn", zap.Error(err))
	}
	saved := 0
	if err := o.store.AddMessage(ctx, req.UserID, req.GuildID, req.ChannelID, "assistant", clean); err != nil {
		// Memories belong to a recorded answer. If the assistant turn did not
		// make it into history, the extracted memories are dropped with it.
		log.Warn("Failed to log assistant turn, skipping memory writes", zap.Error(err))
	} else {
		for _, memory := range extracted {
			if err := o.store.SetMemory(ctx, req.UserID, req.GuildID, memory.Key, memory.Value, memory.Context); err != nil {
				log.Warn("Failed to save memory", zap.String("key", memory.Key), zap.Error(err))
				continue
			}
			saved++
		}
	}

	log.Info("Chat run complete",
		zap.Int("tool_rounds", rounds),
		zap.Int("memories_saved", saved),
	)

	return &Result{
		RunID:         runID,
		Reply:         clean,
		ToolRounds:    rounds,
		MemoriesSaved: saved,
	}, nil
}

// executeRound runs all sibling calls of one round concurrently. Results are
// returned in call order. Execute never panics a run: failures come back as
// error results, so the group always completes.
func (o *Orchestrator) executeRound(ctx context.Context, execCtx *tools.ExecutionContext, toolCalls []adapter.ToolCall) []*tools.ToolResult {
	results := make([]*tools.ToolResult, len(toolCalls))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, toolCall := range toolCalls {
		g.Go(func() error {
			results[i] = o.executor.Execute(groupCtx, execCtx, toolCall)
			return nil
		})
	}
	// Workers never return errors; Wait is just the join point
	_ = g.Wait()

	return results
}

// toolMessageContent renders a tool result for the model's tool-role message
func toolMessageContent(result *tools.ToolResult) string {
	if !result.Success {
		return fmt.Sprintf("ERROR: %s", result.Error)
	}
	if result.Message != "" {
		return result.Message
	}
	return "SUCCESS"
}

// bestEffortReply summarizes completed tool work when the model never
// produced final content
func bestEffortReply(toolSummaries []string) string {
	if len(toolSummaries) == 0 {
		return "I've completed the requested actions."
	}
	return "Here's what I got done:\n" + strings.Join(toolSummaries, "\n")
}
