// Package formats provides parsers for 3D geometry file formats.
// OBJ (Wavefront) format parser for polygonal models.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	// ErrExpectedTerm is reserved for directives missing a mandatory term.
	ErrExpectedTerm = errors.New("expected term")
	ErrExpectedIdx  = errors.New("expected index")
	ErrExpectedName = errors.New("expected object or group name")
	ErrInvalidIndex = errors.New("invalid index")
)

// OBJError describes where an OBJ parse failed.
type OBJError struct {
	Line  int   // 1-based source line, 0 when the fault was found after parsing
	Index int   // Offending index for ErrInvalidIndex
	Err   error // One of the ErrXXX sentinels
}

// Error implements the error interface.
func (e *OBJError) Error() string {
	if errors.Is(e.Err, ErrInvalidIndex) {
		if e.Line > 0 {
			return fmt.Sprintf("%v '%d' on line %d", e.Err, e.Index, e.Line)
		}
		return fmt.Sprintf("%v '%d'", e.Err, e.Index)
	}
	return fmt.Sprintf("%v on line %d", e.Err, e.Line)
}

// Unwrap returns the sentinel error.
func (e *OBJError) Unwrap() error {
	return e.Err
}

// OBJVertexRecord references the attributes of one face vertex.
// Indices are 1-based; 0 means the attribute is absent.
type OBJVertexRecord struct {
	Position int
	UV       int
	Normal   int
}

// objRange is a half-open range [start, end) into the vertex table.
type objRange struct {
	start, end int
}

type objGroup struct {
	name     string
	polygons []objRange
}

type objObject struct {
	name   string
	groups []objGroup
	index  map[string]int
}

// OBJ represents a parsed Wavefront OBJ file.
// It is immutable once returned and safe for concurrent readers.
type OBJ struct {
	positions [][3]float32
	uvs       [][3]float32
	normals   [][3]float32
	vertices  []OBJVertexRecord

	objects []objObject
	index   map[string]int
}

// LoadOBJ reads and parses an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj: %w", err)
	}
	defer f.Close()

	return ReadOBJ(bufio.NewReader(f))
}

// ReadOBJ reads the whole stream and parses it as OBJ.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return ParseOBJ(data)
}

// ParseOBJ parses OBJ data from a byte slice.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ParseOBJLines(splitLines(data))
}

// ParseOBJStrings parses OBJ data that has already been split into lines.
func ParseOBJStrings(lines []string) (*OBJ, error) {
	return ParseOBJLines(func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	})
}

// ParseOBJLines parses OBJ data from a sequence of lines.
// The first error aborts the parse; no partial model is returned.
func ParseOBJLines(lines iter.Seq[string]) (*OBJ, error) {
	obj := &OBJ{index: make(map[string]int)}
	state := newObjState()

	lineNum := 0
	for line := range lines {
		lineNum++
		if err := obj.parseLine(state, line, lineNum); err != nil {
			return nil, err
		}
	}
	state.flush(obj)

	if err := obj.validate(); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseLine dispatches a single line on its directive.
func (o *OBJ) parseLine(state *objState, line string, lineNum int) error {
	terms := strings.Fields(line)
	if len(terms) == 0 {
		return nil
	}

	switch terms[0] {
	case "v":
		o.positions = append(o.positions, parseTriple(terms[1:]))
	case "vt":
		o.uvs = append(o.uvs, parseTriple(terms[1:]))
	case "vn":
		o.normals = append(o.normals, parseTriple(terms[1:]))
	case "f":
		poly, err := o.parseFace(terms[1:], lineNum)
		if err != nil {
			return err
		}
		state.addPolygon(poly)
	case "g":
		state.selectGroups(terms[1:])
	case "o":
		state.flush(o)
		if len(terms) < 2 || !ValidName(terms[1]) {
			return &OBJError{Line: lineNum, Err: ErrExpectedName}
		}
		state.begin(terms[1])
	}
	return nil
}

// parseTriple reads up to three floats, stopping at the first token that
// is not a number. Missing components are zero.
func parseTriple(terms []string) [3]float32 {
	var out [3]float32
	for i := 0; i < len(out) && i < len(terms); i++ {
		f, err := strconv.ParseFloat(terms[i], 32)
		if err != nil {
			break
		}
		out[i] = float32(f)
	}
	return out
}

// parseFace resolves the vertex tokens of an f directive and appends them
// to the vertex table.
func (o *OBJ) parseFace(terms []string, lineNum int) (objRange, error) {
	lengths := [3]int{len(o.positions), len(o.uvs), len(o.normals)}
	start := len(o.vertices)

	for _, term := range terms {
		rec, err := resolveVertex(term, lengths, lineNum)
		if err != nil {
			return objRange{}, err
		}
		o.vertices = append(o.vertices, rec)
	}

	return objRange{start: start, end: len(o.vertices)}, nil
}

// validate bounds-checks every vertex record against the final buffers.
func (o *OBJ) validate() error {
	for _, v := range o.vertices {
		if v.Position-1 >= len(o.positions) {
			return &OBJError{Index: v.Position, Err: ErrInvalidIndex}
		}
		if v.UV != 0 && v.UV-1 >= len(o.uvs) {
			return &OBJError{Index: v.UV, Err: ErrInvalidIndex}
		}
		if v.Normal != 0 && v.Normal-1 >= len(o.normals) {
			return &OBJError{Index: v.Normal, Err: ErrInvalidIndex}
		}
	}
	return nil
}

// ValidName reports whether name may be used for an object or group.
// Only ASCII letters, digits, '.' and '_' are allowed.
func ValidName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '_':
		default:
			return false
		}
	}
	return true
}

// splitLines yields the lines of data without their terminators.
func splitLines(data []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(data) > 0 {
			line := data
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				line, data = data[:i], data[i+1:]
			} else {
				data = nil
			}
			line = bytes.TrimSuffix(line, []byte{'\r'})
			if !yield(string(line)) {
				return
			}
		}
	}
}

// Positions returns the vertex positions in file order.
func (o *OBJ) Positions() [][3]float32 {
	return o.positions
}

// UVs returns the texture coordinates in file order.
func (o *OBJ) UVs() [][3]float32 {
	return o.uvs
}

// Normals returns the vertex normals in file order.
func (o *OBJ) Normals() [][3]float32 {
	return o.normals
}

// VertexRecords returns the flat face vertex table.
func (o *OBJ) VertexRecords() []OBJVertexRecord {
	return o.vertices
}
