package formats

import (
	"bytes"
	"io"
	"strconv"
)

// String returns the model in OBJ syntax. The output is meant for
// inspection and does not reproduce the original file byte for byte.
func (o *OBJ) String() string {
	var buf bytes.Buffer
	o.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the model in OBJ syntax to w.
func (o *OBJ) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	writeTriples(&buf, "v", o.positions)
	writeTriples(&buf, "vt", o.uvs)
	writeTriples(&buf, "vn", o.normals)

	for name, object := range o.Objects() {
		if name != "" {
			buf.WriteString("o " + name + "\n")
		}
		for name, group := range object.Groups() {
			if name != "" {
				buf.WriteString("g " + name + "\n")
			}
			for poly := range group.Polygons() {
				buf.WriteString(poly.String())
				buf.WriteByte('\n')
			}
		}
	}

	return buf.WriteTo(w)
}

// String returns the polygon as an f directive with absolute indices.
func (p OBJPolygon) String() string {
	b := []byte{'f'}
	for v := range p.Vertices() {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(v.rec.Position), 10)
		if v.rec.UV == 0 && v.rec.Normal == 0 {
			continue
		}
		b = append(b, '/')
		if v.rec.UV != 0 {
			b = strconv.AppendInt(b, int64(v.rec.UV), 10)
		}
		if v.rec.Normal != 0 {
			b = append(b, '/')
			b = strconv.AppendInt(b, int64(v.rec.Normal), 10)
		}
	}
	return string(b)
}

func writeTriples(buf *bytes.Buffer, directive string, values [][3]float32) {
	for _, t := range values {
		buf.WriteString(directive)
		for _, f := range t {
			buf.WriteByte(' ')
			buf.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		buf.WriteByte('\n')
	}
}
