package geometry

import (
	"math"
)

// SampleLimit is the most points ToPoints will ever return for one path
const SampleLimit = 1_000_000

// SampleCount is how many points ToPoints needs so that none of them are more
// than maxDistance apart. It is a float64 because a tiny maxDistance can ask
// for more points than an int holds. A nil path needs none.
func SampleCount(p Path, maxDistance float64) float64 {
	if isNilPath(p) {
		return 0
	}
	if maxDistance <= 0 || math.IsNaN(maxDistance) {
		return 2
	}
	n := math.Ceil(math.Abs(PathLength(p))/maxDistance) + 1
	if math.IsNaN(n) || n < 2 {
		return 2
	}
	return n
}

// ToPoints divides up the path into points along that path no further apart
// than maxDistance. Lines and arcs always give at least their two end points.
// A circle gives a closed ring, the first point repeated at the end.
// When maxDistance is zero or less only the end points are returned
// (a circle returns its point at 0 degrees twice).
// No more than SampleLimit points are returned, so a very small maxDistance
// spaces them further apart than asked.
func ToPoints(p Path, maxDistance float64) []*Point {
	if isNilPath(p) {
		return nil
	}
	n := SampleLimit
	if c := SampleCount(p, maxDistance); c < SampleLimit {
		n = int(c)
	}
	switch v := p.(type) {
	case *Line:
		return pointaliseLine(v, n)
	case *Arc:
		return pointaliseArc(v.Origin, v.Radius, v.StartAngle, OfArcSpan(v), n)
	case *Circle:
		return pointaliseArc(v.Origin, v.Radius, 0, 360, n)
	default:
		return nil
	}
}

func pointaliseLine(l *Line, n int) []*Point {
	start := Ensure(l.Origin)
	end := Ensure(l.End)
	dx := end.X - start.X
	dy := end.Y - start.Y

	ret := make([]*Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		ret[i] = NewPoint(start.X+t*dx, start.Y+t*dy)
	}
	return ret
}

func pointaliseArc(origin *Point, radius, startAngle, span float64, n int) []*Point {
	ret := make([]*Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		ret[i] = Add(origin, FromPolar(ToRadians(startAngle+span*t), radius))
	}
	return ret
}
