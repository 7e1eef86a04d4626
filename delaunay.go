package mosaic

import (
	"github.com/pkg/errors"
)

// superMargin scales the supertriangle relative to the largest image side.
const superMargin = 2

// Delaunay defines the main components for the triangulation.
type Delaunay struct {
	width     float64
	height    float64
	points    []Point
	triangles []Triangle
}

// Triangulation is the result of a finished Delaunay run.
// Triangles only reference input points; the supertriangle is gone.
type Triangulation struct {
	points    []Point
	triangles []Triangle
}

// Triangulate triangulates the points lying inside [0,width]×[0,height].
// The points must be distinct under the approximate point equality.
// Every triangle is Delaunay, but thin hull triangles whose circumcircle reaches
// a supertriangle node are lost with it, so the mesh may not cover the whole convex hull.
func Triangulate(points []Point, width, height float64) (*Triangulation, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty point set")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bounding box %gx%g", width, height)
	}

	d := &Delaunay{}
	if err := d.Init(points, width, height); err != nil {
		return nil, err
	}
	if err := d.Insert(); err != nil {
		return nil, err
	}
	return d.Triangulation(), nil
}

// Init initialize the delaunay structure with the supertriangle.
func (d *Delaunay) Init(points []Point, width, height float64) error {
	n := len(points)

	d.width = width
	d.height = height
	d.points = make([]Point, n, n+3)
	copy(d.points, points)

	// Create the supertriangle, an artificial triangle which encompasses all the points.
	// At the end of the triangulation process any triangles which share a node with the supertriangle are deleted.
	m := superMargin * Max(width, height)
	cx, cy := width/2, height/2
	d.points = append(d.points,
		Point{X: cx - 2*m, Y: cy - m},
		Point{X: cx + 2*m, Y: cy - m},
		Point{X: cx, Y: cy + 2*m},
	)
	super, err := NewTriangle(n, n+1, n+2, d.points[n], d.points[n+1], d.points[n+2])
	if err != nil {
		return errors.Wrap(err, "supertriangle")
	}
	d.triangles = []Triangle{super}

	return nil
}

// Insert adds the points one by one, in input order, repairing the mesh after each insertion.
func (d *Delaunay) Insert() error {
	n := len(d.points) - 3

	for k := 0; k < n; k++ {
		p := d.points[k]

		var (
			edges []Edge
			temps = make([]Triangle, 0, len(d.triangles)+2)
		)
		for _, t := range d.triangles {
			// Check whether the point is inside the triangle circumcircle.
			if t.ContainsPoint(p) {
				edges = append(edges, t.Edges[0], t.Edges[1], t.Edges[2])
			} else {
				// If not included carry over.
				temps = append(temps, t)
			}
		}

		for _, e := range boundary(edges) {
			t, err := NewTriangle(e.I, e.J, k, e.P, e.Q, p)
			if err != nil {
				return errors.Wrapf(err, "inserting point %d", k)
			}
			temps = append(temps, t)
		}
		d.triangles = temps
	}
	return nil
}

// boundary returns the edges of the polygonal hole: those found in exactly one bad triangle.
func boundary(edges []Edge) []Edge {
	polygon := make([]Edge, 0, len(edges))
	for i, e := range edges {
		shared := false
		for j, o := range edges {
			if i != j && e.Eq(o) {
				shared = true
				break
			}
		}
		if !shared {
			polygon = append(polygon, e)
		}
	}
	return polygon
}

// Triangulation drops the triangles sharing a node with the supertriangle and returns the final mesh.
func (d *Delaunay) Triangulation() *Triangulation {
	n := len(d.points) - 3

	triangles := make([]Triangle, 0, len(d.triangles))
	for _, t := range d.triangles {
		if t.hasNode(n) || t.hasNode(n+1) || t.hasNode(n+2) {
			continue
		}
		triangles = append(triangles, t)
	}
	return &Triangulation{
		points:    d.points[:n:n],
		triangles: triangles,
	}
}

// Points returns the triangulated input points, indexed by identity.
func (t *Triangulation) Points() []Point {
	return t.points
}

// Triangles return the generated triangles.
func (t *Triangulation) Triangles() []Triangle {
	return t.triangles
}

// Validate checks that neighbouring triangles agree on their shared edges,
// that the mesh has no holes and that no circumcircle contains a foreign point.
// It returns nil if no issues were found.
func (t *Triangulation) Validate() error {
	uses := make(map[[2]int]int)
	for _, tri := range t.triangles {
		for _, e := range tri.Edges {
			if !e.P.Eq(t.points[e.I]) || !e.Q.Eq(t.points[e.J]) {
				return errors.Errorf("edge %v does not match its points", edgeKey(e))
			}
			uses[edgeKey(e)]++
		}
	}
	for k, c := range uses {
		if c > 2 {
			return errors.Errorf("edge %v shared by %d triangles", k, c)
		}
	}

	// Each connected piece of a hole free mesh is a disk, or disks joined at
	// single vertices, so its Euler characteristic V - E + T equals 1.
	// Every hole lowers it by one.
	parent := make(map[int]int)
	var find func(i int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for k := range uses {
		for _, i := range k {
			if _, ok := parent[i]; !ok {
				parent[i] = i
			}
		}
		parent[find(k[0])] = find(k[1])
	}
	components := 0
	for i := range parent {
		if find(i) == i {
			components++
		}
	}
	if euler := len(parent) - len(uses) + len(t.triangles); euler != components {
		return errors.Errorf("mesh has %d hole(s)", components-euler)
	}
	for ti, tri := range t.triangles {
		for i, p := range t.points {
			if tri.hasNode(i) {
				continue
			}
			if tri.Center.distSq(p) < tri.RadiusSq*(1-epsilon) {
				return errors.Errorf("point %d inside circumcircle of triangle %d", i, ti)
			}
		}
	}
	return nil
}

func edgeKey(e Edge) [2]int {
	if e.I > e.J {
		return [2]int{e.J, e.I}
	}
	return [2]int{e.I, e.J}
}
