package oas

import (
	"github.com/erraggy/oaswire/oaserrors"
)

func (s *encodeState) writeSchema(sc *Schema) error {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.enc.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(s.enc.maxDepth),
			Actual:       int64(s.depth),
			Message:      "at " + s.path.String(),
		}
	}

	o := s.beginObject()
	if sc.Ref != "" {
		o.reqStr("$ref", sc.Ref)
		o.end()
		return nil
	}

	o.str("title", sc.Title)
	if err := o.optFloat("multipleOf", sc.MultipleOf); err != nil {
		return err
	}
	if err := o.optFloat("maximum", sc.Maximum); err != nil {
		return err
	}
	o.flag("exclusiveMaximum", sc.ExclusiveMaximum)
	if err := o.optFloat("minimum", sc.Minimum); err != nil {
		return err
	}
	o.flag("exclusiveMinimum", sc.ExclusiveMinimum)
	o.optInt("maxLength", sc.MaxLength)
	o.optInt("minLength", sc.MinLength)
	o.str("pattern", sc.Pattern)
	o.optInt("maxItems", sc.MaxItems)
	o.optInt("minItems", sc.MinItems)
	o.flag("uniqueItems", sc.UniqueItems)
	o.optInt("maxProperties", sc.MaxProperties)
	o.optInt("minProperties", sc.MinProperties)
	o.strs("required", sc.Required)
	if len(sc.Enum) > 0 {
		if err := o.value("enum", sc.Enum); err != nil {
			return err
		}
	}
	o.str("type", sc.Type)

	if err := optList(o, "allOf", sc.AllOf, s.writeSchema); err != nil {
		return err
	}
	if err := optList(o, "oneOf", sc.OneOf, s.writeSchema); err != nil {
		return err
	}
	if err := optList(o, "anyOf", sc.AnyOf, s.writeSchema); err != nil {
		return err
	}
	if sc.Not != nil {
		if err := o.nested("not", func() error { return s.writeSchema(sc.Not) }); err != nil {
			return err
		}
	}
	if sc.Items != nil {
		if err := o.nested("items", func() error { return s.writeSchema(sc.Items) }); err != nil {
			return err
		}
	}
	if err := keyedField(o, "properties", sc.Properties, notNil[Schema], s.writeSchema); err != nil {
		return err
	}
	if err := s.writeAdditionalProperties(o, sc.AdditionalProperties); err != nil {
		return err
	}

	o.str("description", sc.Description)
	o.str("format", sc.Format)
	if err := o.value("default", sc.Default); err != nil {
		return err
	}
	o.flag("nullable", sc.Nullable)
	if d := sc.Discriminator; d != nil {
		o.key("discriminator")
		do := s.beginObject()
		do.reqStr("propertyName", d.PropertyName)
		err := sortedField(do, "mapping", d.Mapping, always[string], func(v string) error {
			s.writeString(v)
			return nil
		})
		if err != nil {
			return err
		}
		do.end()
	}
	o.flag("readOnly", sc.ReadOnly)
	o.flag("writeOnly", sc.WriteOnly)
	if x := sc.XML; x != nil {
		o.key("xml")
		xo := s.beginObject()
		xo.str("name", x.Name)
		xo.str("namespace", x.Namespace)
		xo.str("prefix", x.Prefix)
		xo.flag("attribute", x.Attribute)
		xo.flag("wrapped", x.Wrapped)
		xo.end()
	}
	if sc.ExternalDocs != nil {
		if err := o.nested("externalDocs", func() error { return s.writeExternalDocs(sc.ExternalDocs) }); err != nil {
			return err
		}
	}
	if err := o.value("example", sc.Example); err != nil {
		return err
	}
	o.flag("deprecated", sc.Deprecated)
	o.end()
	return nil
}

// writeAdditionalProperties writes nothing for the absent value, a JSON
// boolean for the boolean form and a nested schema otherwise.
func (s *encodeState) writeAdditionalProperties(o *object, ap AdditionalProperties) error {
	if allowed, ok := ap.Bool(); ok {
		o.key("additionalProperties")
		if allowed {
			s.buf.WriteString("true")
		} else {
			s.buf.WriteString("false")
		}
		return nil
	}
	if schema, ok := ap.Schema(); ok {
		return o.nested("additionalProperties", func() error { return s.writeSchema(schema) })
	}
	return nil
}
