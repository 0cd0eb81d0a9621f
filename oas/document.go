package oas

import (
	"slices"

	"github.com/erraggy/oaswire/keys"
	"github.com/erraggy/oaswire/oaserrors"
)

// Version is the OpenAPI version written to every encoded document.
const Version = "3.0.0"

// Media types for serving encoded documents.
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)

// Document is the root of an OpenAPI 3.0 document.
//
// A Document is assembled once by Build and never modified afterwards, so it
// can be encoded any number of times from any number of goroutines without
// locking. Callers must not mutate the values passed to Build after the call.
type Document struct {
	info         *Info
	servers      []*Server
	paths        *Paths
	components   *Components
	security     []*SecurityRequirement
	tags         []*Tag
	externalDocs *ExternalDocs
}

// BuildOption sets an optional top-level field of a Document.
type BuildOption func(*Document)

// WithComponents sets the components object.
func WithComponents(c *Components) BuildOption {
	return func(d *Document) {
		d.components = c
	}
}

// WithSecurity sets the document-level security requirements.
// Calling it with no requirements produces an explicit empty list.
func WithSecurity(reqs ...*SecurityRequirement) BuildOption {
	return func(d *Document) {
		d.security = append(make([]*SecurityRequirement, 0, len(reqs)), reqs...)
	}
}

// WithTags sets the document tags.
func WithTags(tags ...*Tag) BuildOption {
	return func(d *Document) {
		d.tags = append(make([]*Tag, 0, len(tags)), tags...)
	}
}

// WithExternalDocs sets the document-level external documentation.
func WithExternalDocs(docs *ExternalDocs) BuildOption {
	return func(d *Document) {
		d.externalDocs = docs
	}
}

// Build assembles a document. info and paths are required; info must carry a
// title and a version. servers may be empty and is always encoded.
//
// Missing required fields are reported here, as an *oaserrors.EncodingError,
// rather than when the document is encoded.
func Build(info *Info, servers []*Server, paths *Paths, opts ...BuildOption) (*Document, error) {
	switch {
	case info == nil:
		return nil, &oaserrors.EncodingError{Field: "info", Message: "required field is missing"}
	case info.Title == "":
		return nil, &oaserrors.EncodingError{Path: "info", Field: "title", Message: "required field is missing"}
	case info.Version == "":
		return nil, &oaserrors.EncodingError{Path: "info", Field: "version", Message: "required field is missing"}
	case paths == nil:
		return nil, &oaserrors.EncodingError{Field: "paths", Message: "required field is missing"}
	case paths.Pattern() != keys.PathTemplate:
		return nil, &oaserrors.EncodingError{
			Field:   "paths",
			Message: "paths must be keyed by " + keys.PathTemplate.String() + ", got " + paths.Pattern().String(),
		}
	}

	d := &Document{
		info:    info,
		servers: slices.Clone(servers),
		paths:   paths,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Info returns the document metadata.
func (d *Document) Info() *Info { return d.info }

// Servers returns the servers list. The returned slice must not be modified.
func (d *Document) Servers() []*Server { return d.servers }

// Paths returns the paths collection.
func (d *Document) Paths() *Paths { return d.paths }

// Components returns the components object, or nil.
func (d *Document) Components() *Components { return d.components }

// Security returns the document-level security requirements, or nil.
func (d *Document) Security() []*SecurityRequirement { return d.security }

// Tags returns the document tags, or nil.
func (d *Document) Tags() []*Tag { return d.tags }

// ExternalDocs returns the external documentation, or nil.
func (d *Document) ExternalDocs() *ExternalDocs { return d.externalDocs }
