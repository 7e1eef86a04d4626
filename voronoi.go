package mosaic

import (
	"math"
	"sort"
)

// Cell is the Voronoi region of a single input point.
// Polygon holds the circumcenters of the triangles touching the site,
// in ascending atan2 order around it. With the image y axis pointing down
// this winds clockwise on screen.
type Cell struct {
	Site    int
	Point   Point
	Polygon []Point
}

// BuildCells derives the Voronoi cells from the dual of the triangulation.
// Cells with less than 3 vertices are hull artifacts and are left out.
// The returned cells are ordered by site index.
func BuildCells(t *Triangulation) []Cell {
	points := t.Points()
	polygons := make([][]Point, len(points))

	for _, tri := range t.Triangles() {
		for _, n := range tri.Nodes {
			polygons[n] = append(polygons[n], tri.Center)
		}
	}

	cells := make([]Cell, 0, len(points))
	for i, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		site := points[i]
		sort.SliceStable(poly, func(a, b int) bool {
			return angle(site, poly[a]) < angle(site, poly[b])
		})
		cells = append(cells, Cell{Site: i, Point: site, Polygon: poly})
	}
	return cells
}

func angle(o, p Point) float64 {
	return math.Atan2(p.Y-o.Y, p.X-o.X)
}
