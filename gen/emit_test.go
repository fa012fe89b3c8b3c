package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptor() *FuncDescriptor {
	return &FuncDescriptor{
		Kind:         KindTool,
		Name:         "get_weather",
		FuncName:     "GetWeather",
		Package:      "example.com/sample",
		TakesContext: true,
		ResultType:   "CallToolResult",
		Params: []ParamDescriptor{
			{Name: "place", GoType: "string", Optional: false},
			{Name: "units", GoType: "*string", Optional: true},
		},
	}
}

func TestEmitProducesCompilableLookingSource(t *testing.T) {
	source, err := Emit("sample", []*FuncDescriptor{sampleDescriptor()})
	require.NoError(t, err)

	text := string(source)
	assert.Contains(t, text, "package sample")
	assert.Contains(t, text, "type GetWeatherParams struct")
	assert.Contains(t, text, "type GetWeatherHandler struct{}")
	assert.Contains(t, text, `mcp.RegisterTool("get_weather", GetWeatherHandler{})`)
	assert.Contains(t, text, "UnknownArgument")
	assert.Contains(t, text, "MissingRequiredArgument")
	assert.Contains(t, text, "var GetWeatherSchema = json.RawMessage(")
	assert.Contains(t, text, "gojsonschema.Validate(schemaLoader, docLoader)")
	assert.Contains(t, text, "func (h GetWeatherHandler) InputSchema() json.RawMessage")
}

func TestDecisionLeavesHasTwoToTheNLeaves(t *testing.T) {
	d := sampleDescriptor() // 1 optional -> 2 leaves
	tree, err := decisionLeaves(d)
	require.NoError(t, err)

	assert.Equal(t, d.LeafCount(), strings.Count(tree, "GetWeather("))
}

func TestDecisionLeavesTwoOptionals(t *testing.T) {
	d := &FuncDescriptor{
		FuncName:     "Greet",
		TakesContext: true,
		Params: []ParamDescriptor{
			{Name: "name", GoType: "*string", Optional: true},
			{Name: "formal", GoType: "*bool", Optional: true},
		},
	}
	tree, err := decisionLeaves(d)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(tree, "Greet("))
}

func TestCallArgsRequiredAlwaysForwarded(t *testing.T) {
	d := sampleDescriptor()
	args := callArgs(d, map[string]bool{"units": false})
	assert.Equal(t, "ctx, decoded.Place, nil", args)
}

func TestCallArgsOptionalPresent(t *testing.T) {
	d := sampleDescriptor()
	args := callArgs(d, map[string]bool{"units": true})
	assert.Equal(t, "ctx, decoded.Place, decoded.Units", args)
}

func TestEnvelopeNameAndHandlerName(t *testing.T) {
	d := sampleDescriptor()
	assert.Equal(t, "GetWeatherParams", d.EnvelopeName())
	assert.Equal(t, "GetWeatherHandler", d.HandlerName())
}
