package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJsonRpcRequest(t *testing.T) {
	req, err := ParseJsonRpcRequest([]byte(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"point_tool"}}`))
	require.NoError(t, err)
	assert.Equal(t, "tools/call", req.Method)
	assert.Equal(t, float64(3), req.ID)
	assert.JSONEq(t, `{"name":"point_tool"}`, string(req.Params))
	assert.False(t, req.IsNotification())

	_, err = ParseJsonRpcRequest([]byte(`{"jsonrpc":"1.0","method":"x"}`))
	assert.ErrorIs(t, err, ErrNotARequest)

	_, err = ParseJsonRpcRequest([]byte(`{"jsonrpc":"2.0"}`))
	assert.ErrorIs(t, err, ErrNotARequest)

	_, err = ParseJsonRpcRequest([]byte(`{not json`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotARequest)
}

func TestNotification(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{`{"jsonrpc":"2.0","method":"notifications/initialized"}`, true},
		{`{"jsonrpc":"2.0","id":1,"method":"notifications/cancelled"}`, true},
		{`{"jsonrpc":"2.0","method":"tools/list"}`, true},
		{`{"jsonrpc":"2.0","id":0,"method":"tools/list"}`, false},
		{`{"jsonrpc":"2.0","id":"a","method":"initialized"}`, false},
	}
	for _, tt := range tests {
		req, err := ParseJsonRpcRequest([]byte(tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, req.IsNotification(), tt.raw)
	}
}

func TestResponses(t *testing.T) {
	resp, err := NewJsonRpcResponse(map[string]float64{"x": 1}, 7)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(resp.Result))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), resp.String())
	assert.Contains(t, resp.String(), "\n")

	e := NewJsonRpcErrorResponse(ErrMethodNotFound, "Method not found: nope", nil, "abc")
	assert.Equal(t, "abc", e.ID)
	assert.Equal(t, "jsonrpc error: code=-32601 message=Method not found: nope", e.Error.Error())

	_, err = NewJsonRpcResponse(make(chan int), 1)
	assert.Error(t, err)
}

func TestRequestString(t *testing.T) {
	req, err := ParseJsonRpcRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`, req.String())
}
