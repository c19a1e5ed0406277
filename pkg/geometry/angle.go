package geometry

import "math"

// ToRadians converts degrees to radians
func ToRadians(angleInDegrees float64) float64 {
	// whole revolutions are dropped before converting
	return NoRevolutions(angleInDegrees) * math.Pi / 180.0
}

// ToDegrees converts radians to degrees
func ToDegrees(angleInRadians float64) float64 {
	return angleInRadians * 180.0 / math.Pi
}

// NoRevolutions folds an angle in degrees into the range [0, 360)
func NoRevolutions(angleInDegrees float64) float64 {
	revolutions := math.Floor(angleInDegrees / 360)
	if revolutions == 0 {
		return angleInDegrees
	}
	return angleInDegrees - 360*revolutions
}

// FromPointToRadians is the angle of point as seen from origin.
// Coincident points give 0.
func FromPointToRadians(point, origin *Point) float64 {
	p := Ensure(point)
	o := Ensure(origin)
	return math.Atan2(p.Y-o.Y, p.X-o.X)
}

// OfPointInDegrees is FromPointToRadians in degrees
func OfPointInDegrees(origin, point *Point) float64 {
	return ToDegrees(FromPointToRadians(point, origin))
}

// OfArcEnd returns the end angle of an arc, always greater than the start angle
func OfArcEnd(arc *Arc) float64 {
	if arc == nil {
		return 0
	}
	if arc.EndAngle < arc.StartAngle {
		revolutions := math.Ceil((arc.StartAngle - arc.EndAngle) / 360)
		return arc.EndAngle + 360*revolutions
	}
	return arc.EndAngle
}

// OfArcSpan is the number of degrees an arc sweeps through anticlockwise from its start
func OfArcSpan(arc *Arc) float64 {
	if arc == nil {
		return 0
	}
	return OfArcEnd(arc) - arc.StartAngle
}
