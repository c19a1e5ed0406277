package tools

import (
	"fmt"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
	"github.com/richard-senior/mcp-geometry/pkg/protocol"
	"github.com/richard-senior/mcp-geometry/pkg/util"
)

var pointCommands = []string{
	"zero", "ensure", "clone", "add", "subtract", "scale", "distort", "mirror",
	"rotate", "from_polar", "from_arc", "average", "rounded", "closest", "distance", "equal",
}

func NewPointTool() protocol.Tool {
	return protocol.Tool{
		Name:        "point_tool",
		Description: `provides a suite of functions for creating and transforming 2D points`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"command": {
					Type: "string",
					Description: `
					The command to execute. One of:
					zero: returns the point (0,0)
					ensure: coerces 'point' into a point. Objects {x,y} and arrays [x,y] are accepted,
						anything else becomes (0,0). When 'extra' is also given and 'point' is a number,
						both coordinates are set to that number.
					clone: returns a copy of 'point'
					add: returns 'point' + 'other'
					subtract: returns 'point' - 'other'
					scale: multiplies 'point' by 'factor'
					distort: multiplies the x of 'point' by 'scale_x' and the y by 'scale_y'
					mirror: negates the x of 'point' when 'mirror_x' is true and the y when 'mirror_y' is true
					rotate: rotates 'point' by 'angle' degrees about 'origin' (default (0,0))
					from_polar: returns the point at 'angle' RADIANS and distance 'radius' from (0,0)
					from_arc: returns the start and end points of 'arc'
					average: returns the point half way between 'point' and 'other'
					rounded: rounds the coordinates of 'point' to the nearest 'accuracy'
					closest: returns whichever of 'points' is nearest to 'point'
					distance: returns the distance between 'point' and 'other'
					equal: returns whether 'point' and 'other' are within 'accuracy' of each other
					`,
				},
				"point": {
					Type:        "object",
					Description: "A point, either {\"x\":1,\"y\":2} or [1,2]",
				},
				"other": {
					Type:        "object",
					Description: "A second point, either {\"x\":1,\"y\":2} or [1,2]",
				},
				"origin": {
					Type:        "object",
					Description: "The centre of rotation, defaults to (0,0)",
				},
				"points": {
					Type:        "array",
					Description: "An array of points",
				},
				"extra": {
					Type:        "number",
					Description: "Any value, its presence switches ensure to scalar broadcast",
				},
				"factor": {
					Type:        "number",
					Description: "Scale factor",
				},
				"scale_x": {
					Type:        "number",
					Description: "Scale factor for x when distorting",
				},
				"scale_y": {
					Type:        "number",
					Description: "Scale factor for y when distorting",
				},
				"angle": {
					Type:        "number",
					Description: "Degrees for rotate, radians for from_polar",
				},
				"radius": {
					Type:        "number",
					Description: "Distance from the origin for from_polar",
				},
				"mirror_x": {
					Type:        "boolean",
					Description: "Negate the x coordinate",
				},
				"mirror_y": {
					Type:        "boolean",
					Description: "Negate the y coordinate",
				},
				"arc": {
					Type:        "object",
					Description: "An arc {\"origin\":[0,0],\"radius\":5,\"startAngle\":0,\"endAngle\":90}, angles in degrees",
				},
				"accuracy": {
					Type:        "number",
					Description: "Rounding or comparison accuracy, defaults to the server setting",
				},
			},
			Required: []string{"command"},
		},
	}
}

func HandlePointTool(params any) (any, error) {
	args, err := toArgs(params)
	if err != nil {
		return nil, err
	}
	command, err := commandArg(args)
	if err != nil {
		return nil, err
	}
	logger.Info("Handling point tool command:", command)

	switch c := command; c {
	case "zero":
		return pointResult(c, geometry.Zero()), nil
	case "ensure":
		if extra, ok := args["extra"]; ok {
			return pointResult(c, geometry.Ensure(args["point"], extra)), nil
		}
		return pointResult(c, geometry.Ensure(args["point"])), nil
	case "clone":
		return pointResult(c, geometry.Clone(pointArg(args, "point"))), nil
	case "add":
		return pointResult(c, geometry.Add(args["point"], args["other"])), nil
	case "subtract":
		return pointResult(c, geometry.Subtract(args["point"], args["other"])), nil
	case "scale":
		factor, err := requiredNumberArg(args, "factor")
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Scale(pointArg(args, "point"), factor)), nil
	case "distort":
		sx, err := numberArg(args, "scale_x", 1)
		if err != nil {
			return nil, err
		}
		sy, err := numberArg(args, "scale_y", 1)
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Distort(pointArg(args, "point"), sx, sy)), nil
	case "mirror":
		mx, err := boolArg(args, "mirror_x")
		if err != nil {
			return nil, err
		}
		my, err := boolArg(args, "mirror_y")
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Mirror(pointArg(args, "point"), mx, my)), nil
	case "rotate":
		angle, err := requiredNumberArg(args, "angle")
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Rotate(pointArg(args, "point"), angle, args["origin"])), nil
	case "from_polar":
		angle, err := requiredNumberArg(args, "angle")
		if err != nil {
			return nil, err
		}
		radius, err := requiredNumberArg(args, "radius")
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.FromPolar(angle, radius)), nil
	case "from_arc":
		m, ok := args["arc"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("arc parameter must be an object")
		}
		arc, err := arcFromMap(m)
		if err != nil {
			return nil, err
		}
		ends := geometry.FromArc(arc)
		return pointsResult(c, ends[:]), nil
	case "average":
		return pointResult(c, geometry.Average(args["point"], args["other"])), nil
	case "rounded":
		accuracy, err := numberArg(args, "accuracy", settings.Accuracy)
		if err != nil {
			return nil, err
		}
		return pointResult(c, geometry.Rounded(pointArg(args, "point"), accuracy)), nil
	case "closest":
		points, err := pointsArg(args, "points")
		if err != nil {
			return nil, err
		}
		closest := geometry.Closest(pointArg(args, "point"), points)
		if closest == nil {
			return nil, fmt.Errorf("points must not be empty")
		}
		return pointResult(c, closest), nil
	case "distance":
		return map[string]any{
			"command":  c,
			"distance": geometry.PointDistance(pointArg(args, "point"), pointArg(args, "other")),
		}, nil
	case "equal":
		accuracy, err := numberArg(args, "accuracy", settings.Accuracy)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"command": c,
			"equal":   geometry.IsPointEqual(pointArg(args, "point"), pointArg(args, "other"), accuracy),
		}, nil
	default:
		return nil, fmt.Errorf("command %s not currently supported%s", c, util.DidYouMean(c, pointCommands))
	}
}

func pointResult(command string, p *geometry.Point) map[string]any {
	return map[string]any{
		"command": command,
		"point":   p,
	}
}

func pointsResult(command string, points []*geometry.Point) map[string]any {
	return map[string]any{
		"command": command,
		"points":  points,
	}
}
