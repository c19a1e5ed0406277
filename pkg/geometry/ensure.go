package geometry

import (
	"math"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"golang.org/x/exp/constraints"
)

// PointLike is anything Ensure can turn into a Point:
//   - *Point (returned as is) or a Point value
//   - map[string]any with numeric "x" and "y" keys, as decoded from JSON
//   - a numeric sequence of at least two elements ([]float64, [2]float64, []int, []any ...)
//   - a number, which only means something when Ensure is given an extra argument
//   - nil or any other zero-ish value, which becomes the origin
type PointLike any

/**
* Ensure coerces a loosely typed value into a Point. The rules, in order:
*   1. nil, a nil *Point, 0, NaN, "" and false give Zero()
*   2. a *Point is returned unchanged, the very same pointer. Callers that do
*      not own the point must Clone it before changing it.
*      Point values and {"x":..,"y":..} maps are copied into a new point.
*   3. a sequence of two or more numbers gives {item[0], item[1]}, the rest is ignored
*   4. if extra arguments were passed and item is a number, both X and Y are set to item
*   5. anything else gives Zero()
* Ensure never fails and never panics.
 */
func Ensure(item PointLike, extra ...any) *Point {
	if isFalsy(item) {
		return Zero()
	}

	switch v := item.(type) {
	case *Point:
		return v
	case Point:
		return NewPoint(v.X, v.Y)
	case map[string]any:
		x, okx := toFloat(v["x"])
		y, oky := toFloat(v["y"])
		if okx && oky {
			return NewPoint(x, y)
		}
	case []float64:
		if p := FromSequence(v); p != nil {
			return p
		}
	case [2]float64:
		return NewPoint(v[0], v[1])
	case []float32:
		if p := FromSequence(v); p != nil {
			return p
		}
	case []int:
		if p := FromSequence(v); p != nil {
			return p
		}
	case []int64:
		if p := FromSequence(v); p != nil {
			return p
		}
	case [2]int:
		return NewPoint(float64(v[0]), float64(v[1]))
	case []any:
		if len(v) >= 2 {
			x, okx := toFloat(v[0])
			y, oky := toFloat(v[1])
			if okx && oky {
				return NewPoint(x, y)
			}
		}
	}

	if len(extra) > 0 {
		if n, ok := toFloat(item); ok {
			logger.Debug("Ensure broadcasting scalar to both coordinates", n)
			return NewPoint(n, n)
		}
	}

	return Zero()
}

// FromSequence builds a point from the first two elements of a numeric slice.
// It returns nil when the slice is too short.
func FromSequence[T constraints.Integer | constraints.Float](seq []T) *Point {
	if len(seq) < 2 {
		return nil
	}
	return NewPoint(float64(seq[0]), float64(seq[1]))
}

// isFalsy reports whether item counts as an absent value
func isFalsy(item any) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Point:
		return v == nil
	case bool:
		return !v
	case string:
		return v == ""
	}
	if n, ok := toFloat(item); ok {
		return n == 0 || math.IsNaN(n)
	}
	return false
}

// toFloat converts any Go numeric kind into a float64
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
