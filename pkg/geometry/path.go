package geometry

// Path type names, as used in JSON
const (
	PathTypeLine   = "line"
	PathTypeArc    = "arc"
	PathTypeCircle = "circle"
)

// Path is one of the primitive drawing paths, a Line, Arc or Circle
type Path interface {
	PathType() string
}

// Represents a straight line from the origin point to the end point
type Line struct {
	Origin *Point `json:"origin"`
	End    *Point `json:"end"`
}

func NewLine(origin, end PointLike) *Line {
	return &Line{
		Origin: Clone(Ensure(origin)),
		End:    Clone(Ensure(end)),
	}
}

func (l *Line) PathType() string { return PathTypeLine }

// A circular arc. Angles are in degrees and the arc runs anticlockwise
// from StartAngle to EndAngle.
type Arc struct {
	Origin     *Point  `json:"origin"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

func NewArc(origin PointLike, radius, startAngle, endAngle float64) *Arc {
	return &Arc{
		Origin:     Clone(Ensure(origin)),
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

func (a *Arc) PathType() string { return PathTypeArc }

// A full circle
type Circle struct {
	Origin *Point  `json:"origin"`
	Radius float64 `json:"radius"`
}

func NewCircle(origin PointLike, radius float64) *Circle {
	return &Circle{
		Origin: Clone(Ensure(origin)),
		Radius: radius,
	}
}

func (c *Circle) PathType() string { return PathTypeCircle }

// isNilPath reports whether p is nil or a nil pointer to one of the path types
func isNilPath(p Path) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Line:
		return v == nil
	case *Arc:
		return v == nil
	case *Circle:
		return v == nil
	}
	return false
}
