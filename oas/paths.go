package oas

import (
	"github.com/erraggy/oaswire/internal/httputil"
	"github.com/erraggy/oaswire/keys"
)

// Paths holds the relative paths to the individual endpoints, keyed by path
// template. Each entry is encoded as a direct property of the paths object.
type Paths = keys.Map[*PathItem]

// NewPaths returns an empty Paths collection.
func NewPaths() *Paths {
	return keys.NewMap[*PathItem](keys.PathTemplate)
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*Parameter
}

// Operations returns the operations defined on the path item keyed by
// lowercase HTTP method, in declaration order. Nil operations are skipped.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	all := [...]MethodOperation{
		{httputil.MethodGet, p.Get},
		{httputil.MethodPut, p.Put},
		{httputil.MethodPost, p.Post},
		{httputil.MethodDelete, p.Delete},
		{httputil.MethodOptions, p.Options},
		{httputil.MethodHead, p.Head},
		{httputil.MethodPatch, p.Patch},
		{httputil.MethodTrace, p.Trace},
	}
	ops := make([]MethodOperation, 0, len(all))
	for _, mo := range all {
		if mo.Operation != nil {
			ops = append(ops, mo)
		}
	}
	return ops
}

// MethodOperation pairs an operation with the path item field holding it.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    *Responses // Required
	// Callbacks maps callback names to Callback values.
	Callbacks  *keys.Map[*keys.Map[*keys.Map[*PathItem]]]
	Deprecated bool
	// Security overrides the document-level requirements. A nil slice
	// inherits them; an empty, non-nil slice removes them.
	Security []*SecurityRequirement
	Servers  []*Server
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string
	Description string
	Content     map[string]*MediaType // Required
	Required    bool
}

// MediaType provides schema and examples for the media type identified by its key.
type MediaType struct {
	Schema   *Schema
	Example  any
	Examples map[string]Example
	Encoding map[string]*Encoding
}

// Encoding is a single encoding definition applied to a single schema property.
type Encoding struct {
	ContentType   string
	Headers       map[string]*Header
	Style         ParameterStyle
	Explode       *bool
	AllowReserved bool
}

// Responses is a container for the expected responses of an operation.
// Default is encoded first, followed by the status codes in insertion order,
// all as sibling properties of one object.
type Responses struct {
	Default *Response
	Codes   *keys.Map[*Response]
}

// NewResponses returns a Responses with the given default (which may be nil).
func NewResponses(def *Response) *Responses {
	return &Responses{
		Default: def,
		Codes:   keys.NewMap[*Response](keys.StatusCode),
	}
}

// Set stores resp under a status code such as "200" or "4XX".
// Invalid codes return an *oaserrors.InvalidKeyError.
func (r *Responses) Set(code string, resp *Response) error {
	if r.Codes == nil {
		r.Codes = keys.NewMap[*Response](keys.StatusCode)
	}
	return r.Codes.Set(code, resp)
}

// Len returns the number of responses, counting the default.
func (r *Responses) Len() int {
	if r == nil {
		return 0
	}
	n := r.Codes.Len()
	if r.Default != nil {
		n++
	}
	return n
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string
	Description string // Required
	Headers     map[string]*Header
	Content     map[string]*MediaType
	Links       map[string]*Link
}

// Callback maps runtime expressions to the single path the callback request
// is sent to. The encoder enforces that each expression holds exactly one path.
type Callback = keys.Map[*Paths]

// NewCallback returns an empty Callback.
func NewCallback() *Callback {
	return keys.NewMap[*Paths](keys.Expression)
}

// Link represents a possible design-time link for a response.
type Link struct {
	Ref          string
	OperationRef string
	OperationID  string
	Parameters   map[string]any
	RequestBody  any
	Description  string
	Server       *Server
}

// Example is either an inline value or a pointer to an external one.
// Implementations are [*ValueExample] and [*ExternalExample].
type Example interface {
	isExample()
}

// ValueExample embeds the example value in the document.
type ValueExample struct {
	Summary     string
	Description string
	Value       any
}

// ExternalExample refers to an example by URL.
type ExternalExample struct {
	Summary       string
	Description   string
	ExternalValue string
}

func (*ValueExample) isExample()    {}
func (*ExternalExample) isExample() {}
