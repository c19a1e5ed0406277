package processor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, query string) map[string]any {
	t.Helper()
	input, err := json.Marshal(MCPRequest{Query: query, RequestID: "test-1"})
	require.NoError(t, err)
	out, err := ProcessRequest(input)
	require.NoError(t, err)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func TestProcessPointQuery(t *testing.T) {
	resp := process(t, `point_tool {"command":"add","point":[1,2],"other":[3,4]}`)
	assert.Equal(t, "test-1", resp["requestId"])

	context := resp["context"].(map[string]any)
	assert.Equal(t, "point_tool", context["tool"])
	result := context["result"].(map[string]any)
	assert.Equal(t, map[string]any{"x": 4.0, "y": 6.0}, result["point"])
}

func TestProcessPathQuery(t *testing.T) {
	resp := process(t, `path_tool {"command":"length","path":{"type":"line","end":[3,4]}}`)
	result := resp["context"].(map[string]any)["result"].(map[string]any)
	assert.Equal(t, 5.0, result["length"])
}

func TestProcessErrors(t *testing.T) {
	resp := process(t, `point_tool not-json`)
	assert.Equal(t, "invalid_arguments", resp["error"].(map[string]any)["code"])

	resp = process(t, `point_tool {"command":"explode"}`)
	assert.Equal(t, "tool_error", resp["error"].(map[string]any)["code"])

	out, err := ProcessRequest([]byte("{"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "invalid_request")
}

func TestProcessUnknownQueryListsTools(t *testing.T) {
	resp := process(t, "help")
	tools := resp["tools"].([]any)
	require.Len(t, tools, 2)
	assert.Equal(t, "point_tool", tools[0].(map[string]any)["name"])
	assert.NotEmpty(t, resp["suggestions"])
}
