package tools

import (
	"math"
	"testing"

	"github.com/richard-senior/mcp-geometry/internal/config"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathToolEnds(t *testing.T) {
	result, err := HandlePathTool(decodeArgs(t, `{"command":"ends","path":{"type":"line","origin":[1,1],"end":{"x":4,"y":5}}}`))
	require.NoError(t, err)
	points := result.(map[string]any)["points"].([]*geometry.Point)
	assert.Equal(t, []*geometry.Point{geometry.NewPoint(1, 1), geometry.NewPoint(4, 5)}, points)

	result, err = HandlePathTool(decodeArgs(t, `{"command":"ends","path":{"type":"circle","radius":2}}`))
	require.NoError(t, err)
	assert.Empty(t, result.(map[string]any)["points"])
}

func TestPathToolMiddleAndLength(t *testing.T) {
	result, err := HandlePathTool(decodeArgs(t, `{"command":"middle","path":{"type":"arc","origin":[0,0],"radius":1,"startAngle":0,"endAngle":180}}`))
	require.NoError(t, err)
	p := result.(map[string]any)["point"].(*geometry.Point)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)

	result, err = HandlePathTool(decodeArgs(t, `{"command":"middle","ratio":0.25,"path":{"type":"line","end":[4,0]}}`))
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(1, 0), result.(map[string]any)["point"])

	result, err = HandlePathTool(decodeArgs(t, `{"command":"length","path":{"type":"circle","origin":[9,9],"radius":1}}`))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, result.(map[string]any)["length"], 1e-9)
}

func TestPathToolPointaliseUsesConfiguredDistance(t *testing.T) {
	c := config.DefaultConfig()
	c.MaxSampleDistance = 2
	Configure(c)
	t.Cleanup(func() { Configure(config.DefaultConfig()) })

	result, err := HandlePathTool(decodeArgs(t, `{"command":"pointalise","path":{"type":"line","origin":[0,0],"end":[10,0]}}`))
	require.NoError(t, err)
	assert.Len(t, result.(map[string]any)["points"], 6)

	result, err = HandlePathTool(decodeArgs(t, `{"command":"pointalise","max_distance":5,"path":{"type":"line","origin":[0,0],"end":[10,0]}}`))
	require.NoError(t, err)
	assert.Len(t, result.(map[string]any)["points"], 3)
}

func TestPathToolErrors(t *testing.T) {
	bad := []string{
		`{"command":"ends"}`,
		`{"command":"ends","path":{"type":"spline"}}`,
		`{"command":"ends","path":{"type":"circle"}}`,
		`{"command":"length","path":{"type":"arc","origin":[0,0]}}`,
		`{"command":"wiggle","path":{"type":"line"}}`,
		`{"command":"middle","ratio":"half","path":{"type":"line"}}`,
		`{"path":{"type":"line"}}`,
	}
	for _, raw := range bad {
		_, err := HandlePathTool(decodeArgs(t, raw))
		assert.Error(t, err, raw)
	}
}

func TestPathToolPointaliseLimit(t *testing.T) {
	_, err := HandlePathTool(decodeArgs(t, `{"command":"pointalise","max_distance":1e-12,"path":{"type":"line","end":[1000,0]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit is 10000")

	c := config.DefaultConfig()
	c.MaxSamplePoints = 3
	Configure(c)
	t.Cleanup(func() { Configure(config.DefaultConfig()) })

	result, err := HandlePathTool(decodeArgs(t, `{"command":"pointalise","max_distance":5,"path":{"type":"line","end":[10,0]}}`))
	require.NoError(t, err)
	assert.Len(t, result.(map[string]any)["points"], 3)

	_, err = HandlePathTool(decodeArgs(t, `{"command":"pointalise","max_distance":4,"path":{"type":"line","end":[10,0]}}`))
	assert.EqualError(t, err, "max_distance 4 would produce 4 points, limit is 3")
}
