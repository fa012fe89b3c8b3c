package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaMarksRequiredAndOptional(t *testing.T) {
	d := sampleDescriptor()
	schema := Schema(d)

	assert.Equal(t, "object", schema["type"])
	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"place"}, required)

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "place")
	assert.Contains(t, props, "units")
}

func TestValidateAcceptsKnownKeys(t *testing.T) {
	d := sampleDescriptor()
	err := Validate(d, map[string]any{"place": "Boston", "units": "celsius"})
	assert.NoError(t, err)
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	d := sampleDescriptor()
	err := Validate(d, map[string]any{"units": "celsius"})
	assert.Error(t, err)
}

func TestValidateRejectsWrongType(t *testing.T) {
	d := sampleDescriptor()
	err := Validate(d, map[string]any{"place": 42})
	assert.Error(t, err)
}

func TestJSONSchemaTypeMapping(t *testing.T) {
	assert.Equal(t, map[string]any{"type": "string"}, jsonSchemaType("string"))
	assert.Equal(t, map[string]any{"type": "integer"}, jsonSchemaType("*int"))
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, jsonSchemaType("[]string"))
}
