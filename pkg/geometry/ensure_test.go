package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureFalsy(t *testing.T) {
	var nilPoint *Point
	for _, item := range []PointLike{nil, nilPoint, 0, 0.0, "", false, math.NaN()} {
		assert.Equal(t, Zero(), Ensure(item), "Ensure(%#v)", item)
	}
	assert.Equal(t, Zero(), Ensure(nil, 5), "a falsy item is zero even with extra arguments")
}

func TestEnsureKeepsPointIdentity(t *testing.T) {
	p := NewPoint(1, 2)
	assert.Same(t, p, Ensure(p))
	assert.Same(t, p, Ensure(p, 7))

	// the flip side, callers changing the result change the original
	Ensure(p).X = 10
	assert.Equal(t, 10.0, p.X)
}

func TestEnsurePointShapedValues(t *testing.T) {
	v := Point{X: 1, Y: 2}
	assert.Equal(t, NewPoint(1, 2), Ensure(v))

	m := map[string]any{"x": 3.0, "y": -4}
	assert.Equal(t, NewPoint(3, -4), Ensure(m))

	// a map without numeric x and y is not point shaped
	assert.Equal(t, Zero(), Ensure(map[string]any{"x": "a", "y": 1.0}))
	assert.Equal(t, Zero(), Ensure(map[string]any{"x": 1.0}))
}

func TestEnsureSequences(t *testing.T) {
	tests := []struct {
		name     string
		item     PointLike
		expected *Point
	}{
		{"float slice", []float64{3, 4}, NewPoint(3, 4)},
		{"extra elements ignored", []float64{3, 4, 999}, NewPoint(3, 4)},
		{"float array", [2]float64{-1, 0.5}, NewPoint(-1, 0.5)},
		{"float32 slice", []float32{1.5, 2.5}, NewPoint(1.5, 2.5)},
		{"int slice", []int{3, 4}, NewPoint(3, 4)},
		{"int64 slice", []int64{-3, 4}, NewPoint(-3, 4)},
		{"int array", [2]int{6, 7}, NewPoint(6, 7)},
		{"json array", []any{3.0, 4.0, "x"}, NewPoint(3, 4)},
		{"too short", []float64{3}, Zero()},
		{"empty", []int{}, Zero()},
		{"json array of strings", []any{"3", "4"}, Zero()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ensure(tt.item))
		})
	}
}

func TestEnsureScalarBroadcast(t *testing.T) {
	// with a second argument a scalar fills both coordinates from the first
	assert.Equal(t, NewPoint(3, 3), Ensure(3, 4))
	assert.Equal(t, NewPoint(-2.5, -2.5), Ensure(-2.5, "anything"))

	// without one a scalar is not a point
	assert.Equal(t, Zero(), Ensure(3))

	// sequences win over the broadcast rule
	assert.Equal(t, NewPoint(1, 2), Ensure([]float64{1, 2}, 9))

	// non numeric items are not broadcast
	assert.Equal(t, Zero(), Ensure("7", 1))
}

func TestFromSequence(t *testing.T) {
	assert.Equal(t, NewPoint(1, 2), FromSequence([]uint8{1, 2}))
	assert.Nil(t, FromSequence([]float64{1}))
}
