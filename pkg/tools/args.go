package tools

import (
	"fmt"

	"github.com/richard-senior/mcp-geometry/internal/config"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
)

var settings = config.DefaultConfig()

// Configure sets the defaults the tools fall back on when an argument is left out
func Configure(c *config.Config) {
	if c != nil {
		settings = c
	}
}

// toArgs converts the tool parameters to a map
func toArgs(params any) (map[string]any, error) {
	if params == nil {
		return nil, fmt.Errorf("no params given")
	}
	args, ok := params.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("couldn't format the parameters as a map of strings")
	}
	return args, nil
}

// commandArg returns the mandatory 'command' argument
func commandArg(args map[string]any) (string, error) {
	command, ok := args["command"].(string)
	if !ok || command == "" {
		return "", fmt.Errorf("no command parameter was sent")
	}
	return command, nil
}

// pointArg coerces the named argument with geometry.Ensure, so a missing or
// malformed point becomes the origin rather than an error
func pointArg(args map[string]any, name string) *geometry.Point {
	return geometry.Ensure(args[name])
}

// numberArg returns the named number, or def when it is absent
func numberArg(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return n, nil
}

// requiredNumberArg returns the named number, failing when it is absent
func requiredNumberArg(args map[string]any, name string) (float64, error) {
	if v, ok := args[name]; !ok || v == nil {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	return numberArg(args, name, 0)
}

// boolArg returns the named flag, false when absent
func boolArg(args map[string]any, name string) (bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return b, nil
}

// pointsArg coerces every element of the named array with geometry.Ensure
func pointsArg(args map[string]any, name string) ([]*geometry.Point, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%s parameter is required", name)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of points", name)
	}
	ret := make([]*geometry.Point, len(list))
	for i, item := range list {
		ret[i] = geometry.Ensure(item)
	}
	return ret, nil
}

// arcFromMap reads {"origin":..,"radius":..,"startAngle":..,"endAngle":..}
func arcFromMap(m map[string]any) (*geometry.Arc, error) {
	radius, err := requiredNumberArg(m, "radius")
	if err != nil {
		return nil, err
	}
	start, err := numberArg(m, "startAngle", 0)
	if err != nil {
		return nil, err
	}
	end, err := numberArg(m, "endAngle", 0)
	if err != nil {
		return nil, err
	}
	return geometry.NewArc(m["origin"], radius, start, end), nil
}

// pathArg decodes the named argument into a line, arc or circle
func pathArg(args map[string]any, name string) (geometry.Path, error) {
	m, ok := args[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s parameter must be an object", name)
	}
	kind, _ := m["type"].(string)
	switch kind {
	case geometry.PathTypeLine:
		return geometry.NewLine(m["origin"], m["end"]), nil
	case geometry.PathTypeArc:
		return arcFromMap(m)
	case geometry.PathTypeCircle:
		radius, err := requiredNumberArg(m, "radius")
		if err != nil {
			return nil, err
		}
		return geometry.NewCircle(m["origin"], radius), nil
	default:
		return nil, fmt.Errorf("unsupported path type: %q", kind)
	}
}
