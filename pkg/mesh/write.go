package mesh

import (
	"encoding/binary"
	"fmt"
	"io"
)

// meshMagic starts every file written by WriteTo.
const meshMagic = "OBJM"

// WriteTo writes the mesh as little-endian binary: magic, triangle count
// (uint32), then interleaved position, normal and uv floats per vertex.
func (m *Mesh) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	if _, err := io.WriteString(cw, meshMagic); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint32(m.Triangles)); err != nil {
		return cw.n, fmt.Errorf("writing header: %w", err)
	}

	vertex := make([]float32, 0, PositionSize+NormalSize+UVSize)
	for i := 0; i < m.VertexCount(); i++ {
		vertex = vertex[:0]
		vertex = append(vertex, m.Positions[i*PositionSize:(i+1)*PositionSize]...)
		vertex = append(vertex, m.Normals[i*NormalSize:(i+1)*NormalSize]...)
		vertex = append(vertex, m.UVs[i*UVSize:(i+1)*UVSize]...)
		if err := binary.Write(cw, binary.LittleEndian, vertex); err != nil {
			return cw.n, fmt.Errorf("writing vertex %d: %w", i, err)
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
