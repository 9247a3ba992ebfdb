package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	apperrors "brrr-bot/backend/pkg/errors"
	"brrr-bot/backend/pkg/logger"
)

// Message roles on the wire
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
	RoleTool      = openai.ChatMessageRoleTool
)

// LLMAdapter handles communication with an OpenAI-compatible endpoint
type LLMAdapter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	mu          sync.RWMutex // Protects model field for concurrent access
	logger      *zap.Logger
}

// NewLLMAdapter creates a new LLM adapter. An empty API key is a
// configuration error: the chat feature cannot start without credentials.
func NewLLMAdapter(baseURL, apiKey, modelID string, temperature float64, maxTokens int) (*LLMAdapter, error) {
	if apiKey == "" {
		return nil, apperrors.NewConfigMissingRequired("OPENAI_API_KEY")
	}
	if modelID == "" {
		return nil, apperrors.NewConfigMissingRequired("MODEL_ID")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &LLMAdapter{
		client:      openai.NewClientWithConfig(config),
		model:       modelID,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
		logger:      logger.Get(),
	}, nil
}

// SetModel updates the model used by this adapter
func (a *LLMAdapter) SetModel(model string) {
	if model != "" {
		a.mu.Lock()
		a.model = model
		a.mu.Unlock()
		a.logger.Debug("LLM adapter model updated", zap.String("model", model))
	}
}

// GetModel returns the current model
func (a *LLMAdapter) GetModel() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model
}

// Message is one turn in the conversation sent to the model. ToolCallID is
// set only on tool-role messages; ToolCalls only on assistant-role messages
// that requested them.
type Message struct {
	Role       string
	Content    string
	ToolCallID string
	ToolCalls  []ToolCall
}

// Tool represents a function that can be called by the LLM
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition defines a function that can be called
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Response represents the LLM's response
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// ToolCall represents a function call from the LLM
type ToolCall struct {
	ID           string
	Name         string
	RawArguments string
	Arguments    map[string]interface{}
}

// Generate sends the full message sequence to the model and returns either
// final content or requested tool calls. Failures are not retried here; a
// failed call surfaces as a transport error and aborts the caller's run.
func (a *LLMAdapter) Generate(ctx context.Context, messages []Message, tools []Tool) (*Response, error) {
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.RawArguments,
				},
			})
		}
		openaiMessages = append(openaiMessages, msg)
	}

	openaiTools := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		openaiTools = append(openaiTools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters:  tool.Function.Parameters,
			},
		})
	}

	a.mu.RLock()
	currentModel := a.model
	a.mu.RUnlock()

	req := openai.ChatCompletionRequest{
		Model:    currentModel,
		Messages: openaiMessages,
		Tools:    openaiTools,
		// ToolChoice defaults to "auto" when tools are provided
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		a.logger.Error("LLM request failed",
			zap.Error(err),
			zap.String("model", currentModel),
		)
		return nil, apperrors.NewTransportFailed(currentModel, err)
	}

	if len(resp.Choices) == 0 {
		return nil, apperrors.ErrTransportEmptyResponse
	}

	choice := resp.Choices[0]
	response := &Response{
		Content:   choice.Message.Content,
		ToolCalls: []ToolCall{},
	}

	for _, tc := range choice.Message.ToolCalls {
		toolCall := ToolCall{
			ID:           tc.ID,
			Name:         tc.Function.Name,
			RawArguments: tc.Function.Arguments,
		}

		args, err := parseJSONArguments(tc.Function.Arguments)
		if err != nil {
			a.logger.Warn("Failed to parse tool call arguments",
				zap.String("tool_id", tc.ID),
				zap.Error(err),
			)
			args = make(map[string]interface{})
		}
		toolCall.Arguments = args

		response.ToolCalls = append(response.ToolCalls, toolCall)
	}

	a.logger.Debug("LLM response generated",
		zap.String("model", currentModel),
		zap.Int("tool_calls", len(response.ToolCalls)),
		zap.Bool("has_content", response.Content != ""),
	)

	return response, nil
}

// parseJSONArguments parses the JSON string arguments into a map
func parseJSONArguments(jsonStr string) (map[string]interface{}, error) {
	var args map[string]interface{}
	if jsonStr == "" {
		return make(map[string]interface{}), nil
	}

	if err := json.Unmarshal([]byte(jsonStr), &args); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return args, nil
}
