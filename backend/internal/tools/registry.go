package tools

import (
	"brrr-bot/backend/internal/adapter"
	apperrors "brrr-bot/backend/pkg/errors"
)

// Registry is the immutable catalog of tool declarations, loaded once at
// startup. Every tool call the model requests is checked against it before
// anything executes.
type Registry struct {
	declarations []adapter.Tool
	byName       map[string]adapter.Tool
}

// NewRegistry builds a registry from the given declarations
func NewRegistry(declarations []adapter.Tool) *Registry {
	byName := make(map[string]adapter.Tool, len(declarations))
	for _, t := range declarations {
		byName[t.Function.Name] = t
	}
	return &Registry{declarations: declarations, byName: byName}
}

// NewDefaultRegistry builds a registry over the full tool catalog
func NewDefaultRegistry() *Registry {
	return NewRegistry(AllTools())
}

// Declarations returns every tool declaration, in catalog order
func (r *Registry) Declarations() []adapter.Tool {
	return r.declarations
}

// Lookup returns the declaration for a tool name
func (r *Registry) Lookup(name string) (adapter.Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Validate checks the tool exists and that every required argument is
// present. Returns a validation error naming the tool or the missing
// fields; it never touches the store.
func (r *Registry) Validate(name string, args map[string]interface{}) error {
	decl, ok := r.byName[name]
	if !ok {
		return apperrors.NewToolNotFound(name)
	}

	var missing []string
	for _, field := range requiredFields(decl) {
		if _, present := args[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewToolMissingArguments(name, missing)
	}

	return nil
}

func requiredFields(decl adapter.Tool) []string {
	raw, ok := decl.Function.Parameters["required"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		fields := make([]string, 0, len(v))
		for _, f := range v {
			if s, ok := f.(string); ok {
				fields = append(fields, s)
			}
		}
		return fields
	}
	return nil
}
