package oas

import (
	"fmt"

	"github.com/erraggy/oaswire/internal/pathutil"
	"github.com/erraggy/oaswire/oaserrors"
)

// ParameterLocation is the "in" value of a parameter.
type ParameterLocation string

// Parameter locations defined by OAS 3.0.
const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// Valid reports whether l is one of the four OAS 3.0 locations.
func (l ParameterLocation) Valid() bool {
	switch l {
	case InQuery, InHeader, InPath, InCookie:
		return true
	}
	return false
}

// ParameterStyle describes how a parameter value is serialized.
type ParameterStyle string

// Parameter styles defined by OAS 3.0.
const (
	StyleMatrix         ParameterStyle = "matrix"
	StyleLabel          ParameterStyle = "label"
	StyleForm           ParameterStyle = "form"
	StyleSimple         ParameterStyle = "simple"
	StyleSpaceDelimited ParameterStyle = "spaceDelimited"
	StylePipeDelimited  ParameterStyle = "pipeDelimited"
	StyleDeepObject     ParameterStyle = "deepObject"
)

// ParameterFields holds the fields that Parameter and Header share.
type ParameterFields struct {
	Description     string
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Style           ParameterStyle
	Explode         *bool
	AllowReserved   bool
	Schema          *Schema
	Example         any
	Examples        map[string]Example
	Content         map[string]*MediaType
}

// Parameter describes a single operation parameter.
//
// Use NewParameter to build one; it rejects a path parameter that is not
// required. Literal construction skips that check, but Document.Validate
// reports it.
type Parameter struct {
	Ref  string
	Name string            // Required
	In   ParameterLocation // Required
	ParameterFields
}

// NewParameter returns a parameter named name in location in.
// A path parameter must have fields.Required set.
func NewParameter(name string, in ParameterLocation, fields ParameterFields) (*Parameter, error) {
	if name == "" {
		return nil, &oaserrors.ValidationError{Field: "name", Message: "parameter name is required"}
	}
	if !in.Valid() {
		return nil, &oaserrors.ValidationError{
			Path:    "parameters." + name,
			Field:   "in",
			Value:   in,
			Message: fmt.Sprintf("unknown parameter location %q", in),
		}
	}
	if in == InPath && !fields.Required {
		return nil, &oaserrors.ValidationError{
			Path:    "parameters." + name,
			Field:   "required",
			Value:   false,
			Message: `must be true when "in" is "path"`,
		}
	}
	return &Parameter{Name: name, In: in, ParameterFields: fields}, nil
}

// PathParameter returns a required path parameter with the given schema.
func PathParameter(name string, schema *Schema) *Parameter {
	return &Parameter{
		Name: name,
		In:   InPath,
		ParameterFields: ParameterFields{
			Required: true,
			Schema:   schema,
		},
	}
}

// ParameterRef returns a parameter that refers to the named component parameter.
func ParameterRef(name string) *Parameter {
	return &Parameter{Ref: pathutil.ParameterRef(name)}
}

// Header follows the structure of a Parameter without name and location;
// the name is the map key and the location is implicitly "header".
type Header struct {
	Ref string
	ParameterFields
}
