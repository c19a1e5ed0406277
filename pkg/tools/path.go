package tools

import (
	"fmt"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
	"github.com/richard-senior/mcp-geometry/pkg/protocol"
	"github.com/richard-senior/mcp-geometry/pkg/util"
)

var pathCommands = []string{"ends", "middle", "length", "pointalise"}

func NewPathTool() protocol.Tool {
	return protocol.Tool{
		Name:        "path_tool",
		Description: `answers questions about lines, arcs and circles`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"command": {
					Type: "string",
					Description: `
					The command to execute. One of:
					ends: the start and end points of 'path' (none for a circle)
					middle: the point 'ratio' of the way along 'path' (default 0.5)
					length: the length of 'path'
					pointalise: points along 'path' no more than 'max_distance' apart
					`,
				},
				"path": {
					Type: "object",
					Description: `One of
					{"type":"line","origin":[0,0],"end":[3,4]}
					{"type":"arc","origin":[0,0],"radius":5,"startAngle":0,"endAngle":90}
					{"type":"circle","origin":[0,0],"radius":5}
					Angles are in degrees, arcs run anticlockwise from startAngle to endAngle`,
				},
				"ratio": {
					Type:        "number",
					Description: "How far along the path for middle, 0 to 1",
				},
				"max_distance": {
					Type:        "number",
					Description: "Maximum spacing of points for pointalise",
				},
			},
			Required: []string{"command", "path"},
		},
	}
}

func HandlePathTool(params any) (any, error) {
	args, err := toArgs(params)
	if err != nil {
		return nil, err
	}
	command, err := commandArg(args)
	if err != nil {
		return nil, err
	}
	path, err := pathArg(args, "path")
	if err != nil {
		return nil, err
	}
	logger.Info("Handling path tool command:", command, path.PathType())

	switch c := command; c {
	case "ends":
		ends := geometry.FromPathEnds(path)
		if ends == nil {
			ends = []*geometry.Point{}
		}
		return pointsResult(c, ends), nil
	case "middle":
		ratio, err := numberArg(args, "ratio", settings.DefaultMiddleRatio)
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Middle(path, ratio)), nil
	case "length":
		return map[string]any{
			"command": c,
			"length":  geometry.PathLength(path),
		}, nil
	case "pointalise":
		maxDistance, err := numberArg(args, "max_distance", settings.MaxSampleDistance)
		if err != nil {
			return nil, err
		}
		if n := geometry.SampleCount(path, maxDistance); n > float64(settings.MaxSamplePoints) {
			return nil, fmt.Errorf("max_distance %g would produce %.0f points, limit is %d", maxDistance, n, settings.MaxSamplePoints)
		}
		return pointsResult(c, geometry.ToPoints(path, maxDistance)), nil
	default:
		return nil, fmt.Errorf("command %s not currently supported%s", c, util.DidYouMean(c, pathCommands))
	}
}
