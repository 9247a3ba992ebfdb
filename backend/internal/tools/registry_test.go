package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "brrr-bot/backend/pkg/errors"
)

func TestRegistryCoversCatalog(t *testing.T) {
	r := NewDefaultRegistry()

	decls := r.Declarations()
	assert.NotEmpty(t, decls)

	// Every declared tool is resolvable by name
	for _, d := range decls {
		_, ok := r.Lookup(d.Function.Name)
		assert.True(t, ok, "missing lookup for %s", d.Function.Name)
	}

	// Names are unique
	seen := make(map[string]bool)
	for _, d := range decls {
		assert.False(t, seen[d.Function.Name], "duplicate tool name %s", d.Function.Name)
		seen[d.Function.Name] = true
	}
}

func TestRegistryValidateUnknownTool(t *testing.T) {
	r := NewDefaultRegistry()

	err := r.Validate("launch_rocket", map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeToolValidation))
}

func TestRegistryValidateRequiredArguments(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		tool    string
		args    map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing title",
			tool:    ToolCreateProject,
			args:    map[string]interface{}{"description": "no title"},
			wantErr: "title",
		},
		{
			name:    "missing both task fields",
			tool:    ToolCreateTask,
			args:    map[string]interface{}{},
			wantErr: "project_id",
		},
		{
			name: "all required present",
			tool: ToolCreateTask,
			args: map[string]interface{}{"project_id": float64(1), "label": "do it"},
		},
		{
			name: "no required fields",
			tool: ToolGetProjects,
			args: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.tool, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEveryToolHasHandler(t *testing.T) {
	e := NewExecutor(nil, NewDefaultRegistry())

	for _, d := range e.Registry().Declarations() {
		_, ok := e.handlers[d.Function.Name]
		assert.True(t, ok, "tool %s has no handler", d.Function.Name)
	}
}
