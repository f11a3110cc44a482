package formats

import (
	"strconv"
	"strings"
)

// Sub-fields of a face vertex token.
const (
	objFieldPosition = iota
	objFieldUV
	objFieldNormal
)

// resolveVertex turns one face vertex token ("3", "3/4", "3//5", "-1/-1/-1")
// into a vertex record. Negative indices count back from lengths, the buffer
// sizes at the time the face is read.
func resolveVertex(term string, lengths [3]int, lineNum int) (OBJVertexRecord, error) {
	var idx [3]int

	fields := strings.SplitN(term, "/", 4)
	for i := 0; i < len(idx) && i < len(fields); i++ {
		v, err := resolveIndex(strings.TrimSpace(fields[i]), lengths[i], lineNum)
		if err != nil {
			return OBJVertexRecord{}, err
		}
		idx[i] = v
	}

	if idx[objFieldPosition] == 0 {
		return OBJVertexRecord{}, &OBJError{Line: lineNum, Err: ErrExpectedIdx}
	}

	return OBJVertexRecord{
		Position: idx[objFieldPosition],
		UV:       idx[objFieldUV],
		Normal:   idx[objFieldNormal],
	}, nil
}

// resolveIndex parses a single index sub-field. It returns 0 for an empty
// field and the absolute 1-based index otherwise.
func resolveIndex(field string, length int, lineNum int) (int, error) {
	if field == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, &OBJError{Line: lineNum, Err: ErrExpectedIdx}
	}

	switch {
	case v > 0:
		return v, nil
	case v == 0:
		return 0, &OBJError{Line: lineNum, Index: v, Err: ErrInvalidIndex}
	}

	resolved := length - (-v - 1)
	if resolved <= 0 {
		return 0, &OBJError{Line: lineNum, Index: v, Err: ErrInvalidIndex}
	}
	return resolved, nil
}
