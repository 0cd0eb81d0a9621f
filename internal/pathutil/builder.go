package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder tracks the position of a recursive walk through a document as
// a stack of segments. Nothing is joined until String is called, which only
// happens when a position has to be reported.
//
// Member names are written dot-separated and array indices in brackets:
//
//	paths./users.get.parameters[0].schema
//
// A member name that itself contains '.', '[' or ']' is written as a quoted
// bracket segment so the rendered path stays unambiguous:
//
//	components.schemas["pkg.User"].properties
type PathBuilder struct {
	segments []string
}

// Push enters the object member name.
func (p *PathBuilder) Push(name string) {
	if strings.ContainsAny(name, ".[]") {
		p.segments = append(p.segments, "["+strconv.Quote(name)+"]")
		return
	}
	p.segments = append(p.segments, "."+name)
}

// PushIndex enters array element i.
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, "["+strconv.Itoa(i)+"]")
}

// Pop leaves the innermost segment. Popping an empty builder is a no-op.
func (p *PathBuilder) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Depth returns the number of segments pushed and not yet popped.
func (p *PathBuilder) Depth() int { return len(p.segments) }

// Reset empties the builder for reuse, keeping its capacity.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
}

// String renders the current position, or "" at the root.
func (p *PathBuilder) String() string {
	return strings.TrimPrefix(strings.Join(p.segments, ""), ".")
}
