package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBuilder_String(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *PathBuilder)
		want  string
	}{
		{
			name:  "empty",
			build: func(*PathBuilder) {},
			want:  "",
		},
		{
			name: "members",
			build: func(p *PathBuilder) {
				p.Push("paths")
				p.Push("/users/{id}")
				p.Push("get")
			},
			want: "paths./users/{id}.get",
		},
		{
			name: "index",
			build: func(p *PathBuilder) {
				p.Push("servers")
				p.PushIndex(2)
				p.Push("url")
			},
			want: "servers[2].url",
		},
		{
			name: "dotted member is quoted",
			build: func(p *PathBuilder) {
				p.Push("components")
				p.Push("schemas")
				p.Push("pkg.User")
				p.Push("properties")
			},
			want: `components.schemas["pkg.User"].properties`,
		},
		{
			name: "bracketed member is quoted",
			build: func(p *PathBuilder) {
				p.Push("tags[0]")
			},
			want: `["tags[0]"]`,
		},
		{
			name: "push pop",
			build: func(p *PathBuilder) {
				p.Push("a")
				p.Push("b")
				p.Pop()
				p.Push("c")
			},
			want: "a.c",
		},
		{
			name: "pop past root",
			build: func(p *PathBuilder) {
				p.Push("a")
				p.Pop()
				p.Pop()
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PathBuilder{}
			tt.build(p)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPathBuilder_Depth(t *testing.T) {
	p := &PathBuilder{}
	p.Push("security")
	p.PushIndex(0)
	assert.Equal(t, 2, p.Depth())
	p.Pop()
	assert.Equal(t, 1, p.Depth())
}

func TestPathBuilder_Reset(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	p.Reset()
	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.Depth())

	p.Push("c")
	assert.Equal(t, "c", p.String())
}

func TestPool_GetPut(t *testing.T) {
	p := Get()
	require.NotNil(t, p)
	p.Push("left")
	p.Push("behind")
	Put(p)

	p2 := Get()
	require.NotNil(t, p2)
	assert.Equal(t, "", p2.String(), "Get must return a reset builder")
	Put(p2)

	// Oversized and nil builders are dropped without panicking.
	big := &PathBuilder{segments: make([]string, 0, maxPathCap+1)}
	Put(big)
	Put(nil)
}

func TestRefs(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", SchemaRef("Pet"))
	assert.Equal(t, "#/components/parameters/limit", ParameterRef("limit"))
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref    string
		prefix string
		want   string
		ok     bool
	}{
		{"#/components/parameters/limit", RefPrefixParameters, "limit", true},
		{"#/components/schemas/Pet", RefPrefixParameters, "", false},
		{"#/components/parameters/", RefPrefixParameters, "", false},
		{"https://example.com/shared.json#/limit", RefPrefixParameters, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := RefName(tt.ref, tt.prefix)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
