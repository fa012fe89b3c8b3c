package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct{ name string }

func (h stubHandler) Call(ctx context.Context, args json.RawMessage) (any, error) {
	return h.name, nil
}

func TestRegisterAndLookupTool(t *testing.T) {
	name := "registry_test_tool_a"
	RegisterTool(name, stubHandler{name: name})

	h, ok := LookupTool(name)
	require.True(t, ok)
	result, err := h.Call(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, name, result)

	assert.Contains(t, RegisteredToolNames(), name)
}

func TestRegisterAndLookupPrompt(t *testing.T) {
	name := "registry_test_prompt_a"
	RegisterPrompt(name, stubHandler{name: name})

	h, ok := LookupPrompt(name)
	require.True(t, ok)
	_, err := h.Call(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, RegisteredPromptNames(), name)
}

func TestLookupMissingToolReturnsFalse(t *testing.T) {
	_, ok := LookupTool("registry_test_tool_does_not_exist")
	assert.False(t, ok)
}

func TestRegisterDuplicateToolPanics(t *testing.T) {
	name := "registry_test_tool_dup"
	RegisterTool(name, stubHandler{name: name})
	assert.Panics(t, func() {
		RegisterTool(name, stubHandler{name: name})
	})
}
