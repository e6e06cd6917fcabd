package validate

import (
	"strconv"
	"strings"
)

type segment struct {
	key   string
	index int
	isIdx bool
}

// FieldPath is an ordered list of key/index segments pointing into one
// configuration element. The structured form stays available for consumers
// that need to jump to a field; String renders the display form.
type FieldPath struct {
	segs []segment
}

// NewFieldPath starts a path at a top-level field.
func NewFieldPath(key string) FieldPath {
	return FieldPath{}.Field(key)
}

// Field returns a copy of the path extended by a key segment.
func (p FieldPath) Field(key string) FieldPath {
	segs := make([]segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return FieldPath{segs: append(segs, segment{key: key})}
}

// Index returns a copy of the path extended by an index segment.
func (p FieldPath) Index(i int) FieldPath {
	segs := make([]segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return FieldPath{segs: append(segs, segment{index: i, isIdx: true})}
}

// String renders the path as "creates[0].tags[2]".
func (p FieldPath) String() string {
	var sb strings.Builder
	for _, seg := range p.segs {
		if seg.isIdx {
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(seg.index))
			sb.WriteString("]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(seg.key)
	}
	return sb.String()
}

// IsEmpty reports whether the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.segs) == 0
}
