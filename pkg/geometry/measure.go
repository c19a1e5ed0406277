package geometry

import "math"

// PointDistance is the straight line distance between a and b
func PointDistance(a, b *Point) float64 {
	pa := Ensure(a)
	pb := Ensure(b)
	dx := pb.X - pa.X
	dy := pb.Y - pa.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsPointEqual reports whether a and b are no further than withinDistance apart.
// A withinDistance of zero or less demands exact equality.
func IsPointEqual(a, b *Point, withinDistance float64) bool {
	if withinDistance <= 0 {
		pa := Ensure(a)
		pb := Ensure(b)
		return pa.X == pb.X && pa.Y == pb.Y
	}
	return PointDistance(a, b) <= withinDistance
}

// Round snaps n to the nearest multiple of accuracy. Accuracy of zero or less leaves n alone.
func Round(n, accuracy float64) float64 {
	if accuracy <= 0 {
		return n
	}
	return math.Round(n/accuracy) * accuracy
}

// PathLength returns the length of a line or arc, or the circumference of a circle
func PathLength(p Path) float64 {
	if isNilPath(p) {
		return 0
	}
	switch v := p.(type) {
	case *Line:
		return PointDistance(v.Origin, v.End)
	case *Arc:
		return 2 * math.Pi * v.Radius * OfArcSpan(v) / 360
	case *Circle:
		return 2 * math.Pi * v.Radius
	default:
		return 0
	}
}
