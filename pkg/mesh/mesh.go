// Package mesh flattens parsed OBJ models into non-indexed triangle streams
// ready for upload to a renderer.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objkit/pkg/formats"
	"github.com/Faultbox/objkit/pkg/math"
)

// ErrNoTriangles is returned when a model contains nothing to draw.
var ErrNoTriangles = errors.New("model has no triangles")

// Components per vertex in each stream.
const (
	PositionSize = 3
	NormalSize   = 3
	UVSize       = 2
)

// Options controls how a model is flattened.
type Options struct {
	Transform       mgl32.Mat4 // Applied to positions; zero value means identity
	GenerateNormals bool       // Use the face normal where the file has none
}

// DefaultOptions returns identity transform with normal generation enabled.
func DefaultOptions() Options {
	return Options{
		Transform:       mgl32.Ident4(),
		GenerateNormals: true,
	}
}

// Scale returns options with a uniform scale transform.
func Scale(s float32, generateNormals bool) Options {
	return Options{
		Transform:       mgl32.Scale3D(s, s, s),
		GenerateNormals: generateNormals,
	}
}

// Mesh holds flattened triangle data, three vertices per triangle.
type Mesh struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	UVs       []float32 // uv per vertex
	Triangles int
	Bounds    math.Bounds // Of transformed positions
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return m.Triangles * 3
}

// Build flattens every triangle of model. See formats.OBJPolygon.Triangles
// for how polygons are split.
func Build(model *formats.OBJ, opts Options) (*Mesh, error) {
	xf := opts.Transform
	if xf == (mgl32.Mat4{}) {
		xf = mgl32.Ident4()
	}
	normalXf := xf.Mat3()

	m := &Mesh{}
	for tri := range model.Triangles() {
		var pos [3]mgl32.Vec3
		for i, v := range tri {
			p := mgl32.Vec3(v.Position())
			pos[i] = mgl32.TransformCoordinate(p, xf)
		}
		face := faceNormal(pos)

		for i, v := range tri {
			m.Positions = append(m.Positions, pos[i][0], pos[i][1], pos[i][2])
			m.Bounds.Extend(math.FromArray([3]float32(pos[i])))

			n, ok := v.Normal()
			switch {
			case ok:
				nv := normalXf.Mul3x1(mgl32.Vec3(n))
				if nv.Len() > 0 {
					nv = nv.Normalize()
				}
				m.Normals = append(m.Normals, nv[0], nv[1], nv[2])
			case opts.GenerateNormals:
				m.Normals = append(m.Normals, face[0], face[1], face[2])
			default:
				m.Normals = append(m.Normals, 0, 0, 0)
			}

			uv, _ := v.UV()
			m.UVs = append(m.UVs, uv[0], uv[1])
		}
		m.Triangles++
	}

	if m.Triangles == 0 {
		return nil, ErrNoTriangles
	}
	return m, nil
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or
// zero for a degenerate one.
func faceNormal(p [3]mgl32.Vec3) mgl32.Vec3 {
	n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
