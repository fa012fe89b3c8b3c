package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	msg, err := decode([]byte(`{"jsonrpc":"2.0","id":"1","method":"ping","params":{}}`))
	require.NoError(t, err)
	assert.Equal(t, KindRequest, msg.Kind)
	assert.Equal(t, "ping", msg.Method)
	assert.Equal(t, "1", msg.ID.String())
}

func TestDecodeNotification(t *testing.T) {
	msg, err := decode([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	require.NoError(t, err)
	assert.Equal(t, KindNotification, msg.Kind)
	assert.True(t, msg.ID.IsZero())
}

func TestDecodeResponse(t *testing.T) {
	msg, err := decode([]byte(`{"jsonrpc":"2.0","id":"7","result":{"ok":true}}`))
	require.NoError(t, err)
	assert.Equal(t, KindResponse, msg.Kind)
	assert.Equal(t, "7", msg.ID.String())
	assert.Nil(t, msg.Error)
}

func TestDecodeErrorResponse(t *testing.T) {
	msg, err := decode([]byte(`{"jsonrpc":"2.0","id":"7","error":{"code":-32601,"message":"Method not found"}}`))
	require.NoError(t, err)
	assert.Equal(t, KindResponse, msg.Kind)
	require.NotNil(t, msg.Error)
	assert.Equal(t, CodeMethodNotFound, msg.Error.Code)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := decode([]byte(`{"jsonrpc":"2.0"}`))
	assert.Error(t, err)
}

func TestDecodeResultAndErrorBothPresentIsMalformed(t *testing.T) {
	_, err := decode([]byte(`{"jsonrpc":"2.0","id":"1","result":{},"error":{"code":-32603,"message":"x"}}`))
	assert.Error(t, err)
}

func TestSalvageIDRecoversIDFromOtherwiseMalformedFrame(t *testing.T) {
	id, ok := salvageID([]byte(`{"jsonrpc":"2.0","id":"9","result":{},"error":{"code":-32603,"message":"x"}}`))
	require.True(t, ok)
	assert.Equal(t, "9", id.String())
}

func TestSalvageIDFailsOnInvalidJSON(t *testing.T) {
	_, ok := salvageID([]byte(`{not json`))
	assert.False(t, ok)
}

func TestSalvageIDFailsWhenNoIDPresent(t *testing.T) {
	_, ok := salvageID([]byte(`{"jsonrpc":"2.0"}`))
	assert.False(t, ok)
}

func TestRoundTripRequest(t *testing.T) {
	original, err := decode([]byte(`{"jsonrpc":"2.0","id":"42","method":"tools/call","params":{"name":"get_weather"}}`))
	require.NoError(t, err)

	data, err := encode(original)
	require.NoError(t, err)

	roundTripped, err := decode(data)
	require.NoError(t, err)

	assert.Equal(t, original.Kind, roundTripped.Kind)
	assert.Equal(t, original.Method, roundTripped.Method)
	assert.Equal(t, original.ID.String(), roundTripped.ID.String())
	assert.JSONEq(t, string(original.Params), string(roundTripped.Params))
}

func TestRoundTripNotification(t *testing.T) {
	original, err := decode([]byte(`{"jsonrpc":"2.0","method":"notifications/progress","params":{"progressToken":"a","progress":0.5}}`))
	require.NoError(t, err)

	data, err := encode(original)
	require.NoError(t, err)

	roundTripped, err := decode(data)
	require.NoError(t, err)

	assert.Equal(t, original.Kind, roundTripped.Kind)
	assert.Equal(t, original.Method, roundTripped.Method)
	assert.True(t, roundTripped.ID.IsZero())
}

func TestRoundTripResponse(t *testing.T) {
	original, err := decode([]byte(`{"jsonrpc":"2.0","id":"3","result":{"tools":[]}}`))
	require.NoError(t, err)

	data, err := encode(original)
	require.NoError(t, err)

	roundTripped, err := decode(data)
	require.NoError(t, err)

	assert.Equal(t, original.Kind, roundTripped.Kind)
	assert.Equal(t, original.ID.String(), roundTripped.ID.String())
	assert.JSONEq(t, string(original.Result), string(roundTripped.Result))
}
