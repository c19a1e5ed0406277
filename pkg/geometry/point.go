package geometry

import (
	"math"
)

///////////////////////////////////////////////////////////////////////////////
/// POINT
///////////////////////////////////////////////////////////////////////////////

// Point represents a 2D point with X and Y coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x float64, y float64) *Point {
	ret := &Point{
		X: x,
		Y: y,
	}
	return ret
}

// Zero returns a new point at the origin
func Zero() *Point {
	return NewPoint(0, 0)
}

// Clone returns a new point with the same coordinates as p.
// A nil point clones to the origin.
func Clone(p *Point) *Point {
	if p == nil {
		return Zero()
	}
	return NewPoint(p.X, p.Y)
}

///////////////////////////////////////////////////////////////////////////////
/// ARITHMETIC
///////////////////////////////////////////////////////////////////////////////

/**
* Adds two points together and returns the result as a new point.
* Either argument may be anything Ensure accepts, so [3,4] is as good as {X:3, Y:4}.
* @param a PointLike the first point
* @param b PointLike the point to add to (or subtract from) a
* @param subtract optional flag, when true b is subtracted from a instead
* @return a new point, neither a nor b is modified
 */
func Add(a, b PointLike, subtract ...bool) *Point {
	ret := Clone(Ensure(a))
	p := Ensure(b)
	if len(subtract) > 0 && subtract[0] {
		ret.X -= p.X
		ret.Y -= p.Y
	} else {
		ret.X += p.X
		ret.Y += p.Y
	}
	return ret
}

// Subtract is shorthand for Add(a, b, true)
func Subtract(a, b PointLike) *Point {
	return Add(a, b, true)
}

// Scale multiplies both coordinates by factor
func Scale(p *Point, factor float64) *Point {
	ret := Clone(p)
	ret.X *= factor
	ret.Y *= factor
	return ret
}

// Distort scales the X and Y coordinates independently
func Distort(p *Point, scaleX, scaleY float64) *Point {
	ret := Clone(p)
	ret.X *= scaleX
	ret.Y *= scaleY
	return ret
}

// Average returns the point half way between a and b
func Average(a, b PointLike) *Point {
	pa := Ensure(a)
	pb := Ensure(b)
	return NewPoint((pa.X+pb.X)/2, (pa.Y+pb.Y)/2)
}

// Rounded snaps both coordinates to the nearest multiple of accuracy
func Rounded(p *Point, accuracy float64) *Point {
	ret := Clone(p)
	ret.X = Round(ret.X, accuracy)
	ret.Y = Round(ret.Y, accuracy)
	return ret
}

///////////////////////////////////////////////////////////////////////////////
/// TRANSFORMS
///////////////////////////////////////////////////////////////////////////////

// Mirror negates X when mirrorX is set and Y when mirrorY is set
func Mirror(p *Point, mirrorX, mirrorY bool) *Point {
	ret := Clone(p)
	if mirrorX {
		ret.X = -ret.X
	}
	if mirrorY {
		ret.Y = -ret.Y
	}
	return ret
}

/**
* Rotates a point about an origin.
* The current angle of p about origin has the rotation added to it and a new point
* is built at that angle, the same distance away from origin.
* When p and origin coincide the distance is zero so the result is origin itself.
* @param p *Point the point to rotate
* @param angleInDegrees float64 positive is anticlockwise in the usual maths orientation
* @param origin PointLike the centre of rotation, nil means (0,0)
* @return a new rotated point
 */
func Rotate(p *Point, angleInDegrees float64, origin PointLike) *Point {
	o := Ensure(origin)
	pp := Ensure(p)
	pointAngleInRadians := FromPointToRadians(pp, o)
	distance := PointDistance(o, pp)
	return Add(o, FromPolar(pointAngleInRadians+ToRadians(angleInDegrees), distance))
}

///////////////////////////////////////////////////////////////////////////////
/// POLAR
///////////////////////////////////////////////////////////////////////////////

// FromPolar converts a polar coordinate to a cartesian point.
// The angle is not normalised and a negative radius points the other way.
func FromPolar(angleInRadians, radius float64) *Point {
	return NewPoint(
		radius*math.Cos(angleInRadians),
		radius*math.Sin(angleInRadians),
	)
}

// FromAngleOnCircle returns the point at the given angle on the circumference of c
func FromAngleOnCircle(angleInDegrees float64, c *Circle) *Point {
	if c == nil {
		return Zero()
	}
	return Add(c.Origin, FromPolar(ToRadians(angleInDegrees), c.Radius))
}

// FromArc returns the start and end points of an arc, in that order
func FromArc(arc *Arc) [2]*Point {
	if arc == nil {
		return [2]*Point{Zero(), Zero()}
	}
	var ret [2]*Point
	for i, a := range []float64{arc.StartAngle, arc.EndAngle} {
		ret[i] = Add(arc.Origin, FromPolar(ToRadians(a), arc.Radius))
	}
	return ret
}

// FromPathEnds returns the end points of a path.
// Circles have no ends so nil is returned for them.
func FromPathEnds(p Path) []*Point {
	if isNilPath(p) {
		return nil
	}
	switch v := p.(type) {
	case *Line:
		return []*Point{Clone(v.Origin), Clone(v.End)}
	case *Arc:
		ends := FromArc(v)
		return ends[:]
	default:
		return nil
	}
}

// Middle returns the point ratio of the way along a path (0 is the start, 1 the end)
func Middle(p Path, ratio float64) *Point {
	if isNilPath(p) {
		return Zero()
	}
	switch v := p.(type) {
	case *Line:
		o := Ensure(v.Origin)
		e := Ensure(v.End)
		return NewPoint(o.X+(e.X-o.X)*ratio, o.Y+(e.Y-o.Y)*ratio)
	case *Arc:
		angle := v.StartAngle + OfArcSpan(v)*ratio
		return Add(v.Origin, FromPolar(ToRadians(angle), v.Radius))
	case *Circle:
		return FromAngleOnCircle(360*ratio, v)
	default:
		return Zero()
	}
}

// Closest returns whichever of points lies nearest to ref, or nil when points is empty.
// The point returned is the one from the slice, not a copy.
func Closest(ref *Point, points []*Point) *Point {
	var ret *Point
	best := math.Inf(1)
	for _, p := range points {
		if p == nil {
			continue
		}
		d := PointDistance(ref, p)
		if d < best {
			best = d
			ret = p
		}
	}
	return ret
}
