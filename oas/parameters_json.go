package oas

func (s *encodeState) writeParameter(p *Parameter) error {
	o := s.beginObject()
	if p.Ref != "" {
		o.reqStr("$ref", p.Ref)
		o.end()
		return nil
	}
	o.reqStr("name", p.Name)
	o.reqStr("in", string(p.In))
	if err := s.writeParameterFields(o, &p.ParameterFields); err != nil {
		return err
	}
	o.end()
	return nil
}

func (s *encodeState) writeHeader(h *Header) error {
	o := s.beginObject()
	if h.Ref != "" {
		o.reqStr("$ref", h.Ref)
		o.end()
		return nil
	}
	if err := s.writeParameterFields(o, &h.ParameterFields); err != nil {
		return err
	}
	o.end()
	return nil
}

// writeParameterFields writes the members parameters and headers share into
// the open object o.
func (s *encodeState) writeParameterFields(o *object, f *ParameterFields) error {
	o.str("description", f.Description)
	o.flag("required", f.Required)
	o.flag("deprecated", f.Deprecated)
	o.flag("allowEmptyValue", f.AllowEmptyValue)
	o.str("style", string(f.Style))
	o.optBool("explode", f.Explode)
	o.flag("allowReserved", f.AllowReserved)
	if f.Schema != nil {
		if err := o.nested("schema", func() error { return s.writeSchema(f.Schema) }); err != nil {
			return err
		}
	}
	if err := o.value("example", f.Example); err != nil {
		return err
	}
	if err := sortedField(o, "examples", f.Examples, exampleSet, s.writeExample); err != nil {
		return err
	}
	return sortedField(o, "content", f.Content, notNil[MediaType], s.writeMediaType)
}
