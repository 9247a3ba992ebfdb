package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorTypeOnTypedErrors(t *testing.T) {
	assert.True(t, IsErrorType(NewConfigMissingRequired("API_KEY"), ErrorTypeConfig))
	assert.True(t, IsErrorType(NewTransportFailed("gpt-4o-mini", errors.New("boom")), ErrorTypeTransport))
	assert.True(t, IsErrorType(NewToolNotFound("frobnicate"), ErrorTypeToolValidation))
	assert.True(t, IsErrorType(ErrTransportEmptyResponse, ErrorTypeTransport))

	assert.False(t, IsErrorType(NewToolNotFound("frobnicate"), ErrorTypeTransport))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeTransport))
	assert.False(t, IsErrorType(nil, ErrorTypeTransport))
}

func TestIsErrorTypeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run aborted: %w", NewStorageFailed("insert message", errors.New("disk full")))

	assert.True(t, IsErrorType(wrapped, ErrorTypeStorage))
	assert.False(t, IsErrorType(wrapped, ErrorTypeTransport))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewTransportFailed("m", errors.New("timeout"))))
	assert.True(t, IsRetryable(NewStorageFailed("query", errors.New("locked"))))

	assert.False(t, IsRetryable(NewToolMissingArguments("create_task", []string{"label"})))
	assert.False(t, IsRetryable(NewConfigMissingRequired("MODEL_ID")))
}

func TestErrorMessages(t *testing.T) {
	err := NewToolMissingArguments("create_task", []string{"project_id", "label"})
	assert.Contains(t, err.Error(), "create_task")
	assert.Contains(t, err.Error(), "project_id")

	withCause := NewTransportFailed("gpt-4o-mini", errors.New("connection refused"))
	assert.Contains(t, withCause.Error(), "connection refused")
	assert.Equal(t, "connection refused", errors.Unwrap(withCause.BaseError).Error())
}
