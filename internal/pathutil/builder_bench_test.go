package pathutil

import (
	"fmt"
	"testing"
)

// The encoder pushes and pops on every member but renders only on error.
func BenchmarkPathBuilder_PushPop(b *testing.B) {
	b.Run("PathBuilder", func(b *testing.B) {
		for b.Loop() {
			p := Get()
			p.Push("paths")
			p.Push("/users/{id}")
			p.Push("get")
			p.Push("responses")
			p.Push("200")
			p.Pop()
			p.Pop()
			p.Pop()
			p.Pop()
			p.Pop()
			Put(p)
		}
	})

	b.Run("FmtSprintf", func(b *testing.B) {
		for b.Loop() {
			path := "paths"
			path = fmt.Sprintf("%s.%s", path, "/users/{id}")
			path = fmt.Sprintf("%s.%s", path, "get")
			path = fmt.Sprintf("%s.%s", path, "responses")
			path = fmt.Sprintf("%s.%s", path, "200")
			_ = path
		}
	})
}

func BenchmarkPathBuilder_String(b *testing.B) {
	p := Get()
	defer Put(p)
	for _, s := range []string{"components", "schemas", "Pet", "properties", "tags", "items"} {
		p.Push(s)
	}
	for b.Loop() {
		_ = p.String()
	}
}
