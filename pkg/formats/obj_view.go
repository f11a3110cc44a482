package formats

import "iter"

// OBJObject is a read-only view of an object in an OBJ.
// It must not outlive the OBJ it was taken from.
type OBJObject struct {
	obj *OBJ
	o   *objObject
}

// OBJGroup is a read-only view of a group within an object.
type OBJGroup struct {
	obj *OBJ
	g   *objGroup
}

// OBJPolygon is a read-only view of a single face.
type OBJPolygon struct {
	obj *OBJ
	r   objRange
}

// OBJVertex is a read-only view of one face vertex.
type OBJVertex struct {
	obj *OBJ
	rec OBJVertexRecord
}

// Object returns an object by name. Content before the first o directive
// belongs to the object named "".
func (o *OBJ) Object(name string) (OBJObject, bool) {
	i, ok := o.index[name]
	if !ok {
		return OBJObject{}, false
	}
	return OBJObject{obj: o, o: &o.objects[i]}, true
}

// ObjectCount returns the number of objects.
func (o *OBJ) ObjectCount() int {
	return len(o.objects)
}

// Objects iterates over (name, object) pairs in order of first appearance.
func (o *OBJ) Objects() iter.Seq2[string, OBJObject] {
	return func(yield func(string, OBJObject) bool) {
		for i := range o.objects {
			object := &o.objects[i]
			if !yield(object.name, OBJObject{obj: o, o: object}) {
				return
			}
		}
	}
}

// Groups iterates over the groups of every object.
func (o *OBJ) Groups() iter.Seq2[string, OBJGroup] {
	return func(yield func(string, OBJGroup) bool) {
		for _, object := range o.Objects() {
			for name, group := range object.Groups() {
				if !yield(name, group) {
					return
				}
			}
		}
	}
}

// Polygons iterates over every polygon of every group.
func (o *OBJ) Polygons() iter.Seq[OBJPolygon] {
	return func(yield func(OBJPolygon) bool) {
		for _, group := range o.Groups() {
			for poly := range group.Polygons() {
				if !yield(poly) {
					return
				}
			}
		}
	}
}

// Triangles iterates over the triangles of every polygon.
// See OBJPolygon.Triangles.
func (o *OBJ) Triangles() iter.Seq[[3]OBJVertex] {
	return flattenTriangles(o.Polygons())
}

// Name returns the object name.
func (ob OBJObject) Name() string {
	return ob.o.name
}

// Group returns a group by name. Faces outside any g directive belong to
// the group named "".
func (ob OBJObject) Group(name string) (OBJGroup, bool) {
	i, ok := ob.o.index[name]
	if !ok {
		return OBJGroup{}, false
	}
	return OBJGroup{obj: ob.obj, g: &ob.o.groups[i]}, true
}

// GroupCount returns the number of groups in the object.
func (ob OBJObject) GroupCount() int {
	return len(ob.o.groups)
}

// Groups iterates over (name, group) pairs.
func (ob OBJObject) Groups() iter.Seq2[string, OBJGroup] {
	return func(yield func(string, OBJGroup) bool) {
		for i := range ob.o.groups {
			g := &ob.o.groups[i]
			if !yield(g.name, OBJGroup{obj: ob.obj, g: g}) {
				return
			}
		}
	}
}

// Polygons iterates over the polygons of every group in the object.
func (ob OBJObject) Polygons() iter.Seq[OBJPolygon] {
	return func(yield func(OBJPolygon) bool) {
		for _, group := range ob.Groups() {
			for poly := range group.Polygons() {
				if !yield(poly) {
					return
				}
			}
		}
	}
}

// Triangles iterates over the triangles of every polygon in the object.
func (ob OBJObject) Triangles() iter.Seq[[3]OBJVertex] {
	return flattenTriangles(ob.Polygons())
}

// Name returns the group name.
func (g OBJGroup) Name() string {
	return g.g.name
}

// Len returns the number of polygons in the group.
func (g OBJGroup) Len() int {
	return len(g.g.polygons)
}

// Polygon returns the i-th polygon of the group in source order.
func (g OBJGroup) Polygon(i int) (OBJPolygon, bool) {
	if i < 0 || i >= len(g.g.polygons) {
		return OBJPolygon{}, false
	}
	return OBJPolygon{obj: g.obj, r: g.g.polygons[i]}, true
}

// Polygons iterates over the group's polygons in source order.
func (g OBJGroup) Polygons() iter.Seq[OBJPolygon] {
	return func(yield func(OBJPolygon) bool) {
		for _, r := range g.g.polygons {
			if !yield(OBJPolygon{obj: g.obj, r: r}) {
				return
			}
		}
	}
}

// Triangles iterates over the triangles of every polygon in the group.
func (g OBJGroup) Triangles() iter.Seq[[3]OBJVertex] {
	return flattenTriangles(g.Polygons())
}

// Len returns the number of vertices in the polygon.
func (p OBJPolygon) Len() int {
	return p.r.end - p.r.start
}

// Vertex returns the i-th vertex in winding order.
func (p OBJPolygon) Vertex(i int) (OBJVertex, bool) {
	if i < 0 || i >= p.Len() {
		return OBJVertex{}, false
	}
	return OBJVertex{obj: p.obj, rec: p.obj.vertices[p.r.start+i]}, true
}

// Vertices iterates over the polygon's vertices in winding order.
func (p OBJPolygon) Vertices() iter.Seq[OBJVertex] {
	return func(yield func(OBJVertex) bool) {
		for _, rec := range p.obj.vertices[p.r.start:p.r.end] {
			if !yield(OBJVertex{obj: p.obj, rec: rec}) {
				return
			}
		}
	}
}

// Record returns the raw 1-based indices of the vertex.
func (v OBJVertex) Record() OBJVertexRecord {
	return v.rec
}

// PositionIndex returns the zero-based index into OBJ.Positions.
func (v OBJVertex) PositionIndex() int {
	return v.rec.Position - 1
}

// Position returns the vertex position.
func (v OBJVertex) Position() [3]float32 {
	return v.obj.positions[v.PositionIndex()]
}

// UVIndex returns the zero-based index into OBJ.UVs, if the vertex has one.
func (v OBJVertex) UVIndex() (int, bool) {
	if v.rec.UV == 0 {
		return 0, false
	}
	return v.rec.UV - 1, true
}

// UV returns the texture coordinate of the vertex, if it has one.
func (v OBJVertex) UV() ([3]float32, bool) {
	i, ok := v.UVIndex()
	if !ok {
		return [3]float32{}, false
	}
	return v.obj.uvs[i], true
}

// NormalIndex returns the zero-based index into OBJ.Normals, if the vertex has one.
func (v OBJVertex) NormalIndex() (int, bool) {
	if v.rec.Normal == 0 {
		return 0, false
	}
	return v.rec.Normal - 1, true
}

// Normal returns the normal of the vertex, if it has one.
func (v OBJVertex) Normal() ([3]float32, bool) {
	i, ok := v.NormalIndex()
	if !ok {
		return [3]float32{}, false
	}
	return v.obj.normals[i], true
}
