package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "brrr-bot/backend/pkg/errors"
)

func TestNewLLMAdapterRequiresCredentials(t *testing.T) {
	_, err := NewLLMAdapter("", "", "gpt-4o-mini", 0.7, 1024)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfig))

	_, err = NewLLMAdapter("", "sk-test", "", 0.7, 1024)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfig))

	a, err := NewLLMAdapter("http://localhost:4000/v1", "sk-test", "gpt-4o-mini", 0.7, 1024)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", a.GetModel())
}

func TestSetModel(t *testing.T) {
	a, err := NewLLMAdapter("", "sk-test", "gpt-4o-mini", 0.7, 1024)
	require.NoError(t, err)

	a.SetModel("gpt-4o")
	assert.Equal(t, "gpt-4o", a.GetModel())

	// Empty model is ignored
	a.SetModel("")
	assert.Equal(t, "gpt-4o", a.GetModel())
}

func TestParseJSONArguments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "valid object",
			input: `{"title": "Widget", "count": 2}`,
			want:  map[string]interface{}{"title": "Widget", "count": float64(2)},
		},
		{
			name:  "empty string",
			input: "",
			want:  map[string]interface{}{},
		},
		{
			name:    "invalid json",
			input:   `{"title": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJSONArguments(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
