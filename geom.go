package mosaic

import (
	"math"

	"github.com/pkg/errors"
)

// epsilon is the tolerance used by the approximate point equality
// and by the relaxed circumcircle containment test.
const epsilon = 1e-6

// ErrDegenerateGeometry is returned when three points do not define a circumcircle.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Point defines a struct having as components the point X and Y coordinate position.
type Point struct {
	X, Y float64
}

// Eq check if two points are approximately equals.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func (p Point) distSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Edge is an unordered pair of triangle vertices.
type Edge struct {
	I, J int
	P, Q Point
}

// Eq reports whether two edges join the same two points, in either direction.
func (e Edge) Eq(o Edge) bool {
	return (e.P.Eq(o.P) && e.Q.Eq(o.Q)) ||
		(e.P.Eq(o.Q) && e.Q.Eq(o.P))
}

// Circumcenter returns the center and the squared radius of the circle
// passing through the three points.
func Circumcenter(p1, p2, p3 Point) (Point, float64, error) {
	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if d == 0 {
		return Point{}, 0, errors.Wrapf(ErrDegenerateGeometry, "collinear points %v %v %v", p1, p2, p3)
	}
	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y

	c := Point{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	r := c.distSq(p1)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Point{}, 0, errors.Wrapf(ErrDegenerateGeometry, "no finite circumcircle for %v %v %v", p1, p2, p3)
	}
	return c, r, nil
}

// Triangle struct defines the basic components of a triangle.
// The vertex indices carry the point identity, the coordinates are kept
// alongside them for the geometric predicates.
type Triangle struct {
	Nodes    [3]int
	Points   [3]Point
	Edges    [3]Edge
	Center   Point
	RadiusSq float64
}

// NewTriangle creates a new triangle from three indexed points and computes its circumcircle.
func NewTriangle(i0, i1, i2 int, p0, p1, p2 Point) (Triangle, error) {
	c, r, err := Circumcenter(p0, p1, p2)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{
		Nodes:  [3]int{i0, i1, i2},
		Points: [3]Point{p0, p1, p2},
		Edges: [3]Edge{
			{I: i0, J: i1, P: p0, Q: p1},
			{I: i1, J: i2, P: p1, Q: p2},
			{I: i2, J: i0, P: p2, Q: p0},
		},
		Center:   c,
		RadiusSq: r,
	}, nil
}

// ContainsPoint reports whether p lies inside the triangle circumcircle.
// The radius is slightly relaxed to absorb rounding errors on the circle boundary.
func (t Triangle) ContainsPoint(p Point) bool {
	return t.Center.distSq(p) <= t.RadiusSq*(1+epsilon)
}

// hasNode reports whether the triangle references the point with index i.
func (t Triangle) hasNode(i int) bool {
	return t.Nodes[0] == i || t.Nodes[1] == i || t.Nodes[2] == i
}
