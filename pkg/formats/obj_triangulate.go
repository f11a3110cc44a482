package formats

import "iter"

// TriangleCount returns the number of triangles Triangles yields.
func (p OBJPolygon) TriangleCount() int {
	if p.Len() < 1 {
		return 0
	}
	return (p.Len() - 1) / 2
}

// Triangles splits the polygon into triangles anchored at its first vertex,
// following the polygon's winding order.
//
// Triangle i is (v0, v[2i+1], v[2i+2]), so the fan advances two vertices per
// triangle: a quad yields one triangle and a pentagon two. Polygons with more
// than four sides are not fully covered. Whether that stride is intended is
// unresolved; callers needing full coverage of n-gons should fan the vertices
// themselves.
//
// The polygon is assumed to be planar and convex. Neither is checked.
func (p OBJPolygon) Triangles() iter.Seq[[3]OBJVertex] {
	return func(yield func([3]OBJVertex) bool) {
		for i := 0; i < p.TriangleCount(); i++ {
			a, _ := p.Vertex(0)
			b, _ := p.Vertex(2*i + 1)
			c, _ := p.Vertex(2*i + 2)
			if !yield([3]OBJVertex{a, b, c}) {
				return
			}
		}
	}
}

// flattenTriangles chains the triangles of a sequence of polygons.
func flattenTriangles(polys iter.Seq[OBJPolygon]) iter.Seq[[3]OBJVertex] {
	return func(yield func([3]OBJVertex) bool) {
		for poly := range polys {
			for tri := range poly.Triangles() {
				if !yield(tri) {
					return
				}
			}
		}
	}
}
