package pathutil

import "sync"

const (
	defaultPathCap = 16 // deep enough for an operation's schema properties
	maxPathCap     = 128
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, defaultPathCap)}
	},
}

// Get returns an empty PathBuilder from the pool.
// Every encode and validation pass takes one and returns it with Put.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Builders grown past maxPathCap by unusually
// deep documents are left for the garbage collector.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	builders.Put(p)
}
