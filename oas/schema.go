package oas

import (
	"github.com/erraggy/oaswire/internal/pathutil"
	"github.com/erraggy/oaswire/keys"
)

// Schema types.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

// Data type formats defined by OAS 3.0.
const (
	FormatInt32    = "int32"
	FormatInt64    = "int64"
	FormatFloat    = "float"
	FormatDouble   = "double"
	FormatByte     = "byte"
	FormatBinary   = "binary"
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatPassword = "password"
)

// Schema is an OAS 3.0 Schema Object.
//
// Nested schemas form a tree built top-down; the encoder bounds recursion
// depth, so an accidental cycle fails to encode instead of overflowing.
type Schema struct {
	Ref string // when set, only "$ref" is encoded

	Title            string
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      bool
	MaxProperties    *int
	MinProperties    *int
	Required         []string
	Enum             []any
	Type             string

	AllOf                []*Schema
	OneOf                []*Schema
	AnyOf                []*Schema
	Not                  *Schema
	Items                *Schema
	Properties           *keys.Map[*Schema]
	AdditionalProperties AdditionalProperties

	Description   string
	Format        string
	Default       any
	Nullable      bool
	Discriminator *Discriminator
	ReadOnly      bool
	WriteOnly     bool
	XML           *XML
	ExternalDocs  *ExternalDocs
	Example       any
	Deprecated    bool
}

// SchemaRef returns a schema that refers to the named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: pathutil.SchemaRef(name)}
}

// SetProperty adds a named property schema, creating the properties map on
// first use. Any non-empty name is accepted.
func (s *Schema) SetProperty(name string, prop *Schema) error {
	if s.Properties == nil {
		s.Properties = keys.NewMap[*Schema](keys.PropertyName)
	}
	return s.Properties.Set(name, prop)
}

type additionalKind uint8

const (
	additionalAbsent additionalKind = iota
	additionalBool
	additionalSchema
)

// AdditionalProperties is the boolean-or-schema value of a schema's
// additionalProperties keyword. Its three states encode differently:
// the zero value is omitted, a boolean is written as a JSON literal, and a
// schema is written as a nested object.
type AdditionalProperties struct {
	kind    additionalKind
	allowed bool
	schema  *Schema
}

// AdditionalAllowed returns a boolean additionalProperties.
func AdditionalAllowed(allowed bool) AdditionalProperties {
	return AdditionalProperties{kind: additionalBool, allowed: allowed}
}

// AdditionalSchema returns a schema-valued additionalProperties.
// A nil schema yields the absent value.
func AdditionalSchema(s *Schema) AdditionalProperties {
	if s == nil {
		return AdditionalProperties{}
	}
	return AdditionalProperties{kind: additionalSchema, schema: s}
}

// IsAbsent reports whether no additionalProperties value is set.
func (a AdditionalProperties) IsAbsent() bool { return a.kind == additionalAbsent }

// Bool returns the boolean value and whether a holds one.
func (a AdditionalProperties) Bool() (allowed, ok bool) {
	return a.allowed, a.kind == additionalBool
}

// Schema returns the schema value and whether a holds one.
func (a AdditionalProperties) Schema() (*Schema, bool) {
	return a.schema, a.kind == additionalSchema
}

// Discriminator aids in serialization and validation when payloads may
// be one of a number of schemas.
type Discriminator struct {
	PropertyName string // Required
	Mapping      map[string]string
}

// XML adjusts the XML representation of a property.
type XML struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
}

// Float returns a pointer to v, for the optional numeric schema fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for the optional length and count fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for tri-state flags such as Explode.
func Bool(v bool) *bool { return &v }
