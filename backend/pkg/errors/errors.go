package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeTransport represents model endpoint errors
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeStorage represents persistence store errors
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeToolValidation represents tool lookup/argument errors
	ErrorTypeToolValidation ErrorType = "tool_validation"
	// ErrorTypeToolExecution represents tool execution errors
	ErrorTypeToolExecution ErrorType = "tool_execution"
	// ErrorTypeDiscord represents Discord-related errors
	ErrorTypeDiscord ErrorType = "discord"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrType returns the error category. Structs embedding BaseError inherit
// this, so IsErrorType works on them without reflection.
func (e *BaseError) ErrType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Transport Errors

// ErrTransportFailed is returned when a model request fails
type ErrTransportFailed struct {
	*BaseError
	Model string
}

func NewTransportFailed(model string, err error) *ErrTransportFailed {
	return &ErrTransportFailed{
		BaseError: NewBaseError(ErrorTypeTransport, fmt.Sprintf("model request failed: %s", model), err),
		Model:     model,
	}
}

// ErrTransportEmptyResponse is returned when the model returns no choices
var ErrTransportEmptyResponse = NewBaseError(ErrorTypeTransport, "empty response from model", nil)

// Storage Errors

// ErrStorageFailed is returned when a store operation fails
type ErrStorageFailed struct {
	*BaseError
	Operation string
}

func NewStorageFailed(operation string, err error) *ErrStorageFailed {
	return &ErrStorageFailed{
		BaseError: NewBaseError(ErrorTypeStorage, fmt.Sprintf("store operation failed: %s", operation), err),
		Operation: operation,
	}
}

// ErrStorageNotFound is returned when a requested record does not exist
type ErrStorageNotFound struct {
	*BaseError
	Entity string
	ID     string
}

func NewStorageNotFound(entity, id string) *ErrStorageNotFound {
	return &ErrStorageNotFound{
		BaseError: NewBaseError(ErrorTypeStorage, fmt.Sprintf("%s not found: %s", entity, id), nil),
		Entity:    entity,
		ID:        id,
	}
}

// Tool Errors

// ErrToolNotFound is returned when a requested tool is not in the registry
type ErrToolNotFound struct {
	*BaseError
	ToolName string
}

func NewToolNotFound(toolName string) *ErrToolNotFound {
	return &ErrToolNotFound{
		BaseError: NewBaseError(ErrorTypeToolValidation, fmt.Sprintf("unknown tool: %s", toolName), nil),
		ToolName:  toolName,
	}
}

// ErrToolMissingArguments is returned when required arguments are absent
type ErrToolMissingArguments struct {
	*BaseError
	ToolName string
	Missing  []string
}

func NewToolMissingArguments(toolName string, missing []string) *ErrToolMissingArguments {
	return &ErrToolMissingArguments{
		BaseError: NewBaseError(ErrorTypeToolValidation, fmt.Sprintf("tool %s missing required arguments: %v", toolName, missing), nil),
		ToolName:  toolName,
		Missing:   missing,
	}
}

// ErrToolExecutionFailed is returned when the underlying operation fails
type ErrToolExecutionFailed struct {
	*BaseError
	ToolName string
}

func NewToolExecutionFailed(toolName string, err error) *ErrToolExecutionFailed {
	return &ErrToolExecutionFailed{
		BaseError: NewBaseError(ErrorTypeToolExecution, fmt.Sprintf("tool execution failed: %s", toolName), err),
		ToolName:  toolName,
	}
}

// Discord Errors

// ErrDiscordMessageSendFailed is returned when sending a Discord message fails
type ErrDiscordMessageSendFailed struct {
	*BaseError
	ChannelID string
}

func NewDiscordMessageSendFailed(channelID string, err error) *ErrDiscordMessageSendFailed {
	return &ErrDiscordMessageSendFailed{
		BaseError: NewBaseError(ErrorTypeDiscord, "failed to send message", err),
		ChannelID: channelID,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if typed, ok := err.(interface{ ErrType() ErrorType }); ok {
			return typed.ErrType() == errType
		}
		wrapped, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = wrapped.Unwrap()
	}
	return false
}

// IsRetryable reports whether the failure may succeed on a later attempt.
// Only transport and storage failures qualify; validation errors never do.
func IsRetryable(err error) bool {
	return IsErrorType(err, ErrorTypeTransport) || IsErrorType(err, ErrorTypeStorage)
}
