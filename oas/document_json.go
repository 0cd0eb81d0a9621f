package oas

func (s *encodeState) writeDocument(d *Document) error {
	o := s.beginObject()
	o.reqStr("openapi", Version)
	if err := o.nested("info", func() error { return s.writeInfo(d.info) }); err != nil {
		return err
	}
	if err := list(o, "servers", d.servers, s.writeServer); err != nil {
		return err
	}
	err := o.nested("paths", func() error {
		return flatten(s, d.paths, notNil[PathItem], s.writePathItem)
	})
	if err != nil {
		return err
	}
	if d.components != nil {
		if err := o.nested("components", func() error { return s.writeComponents(d.components) }); err != nil {
			return err
		}
	}
	if d.security != nil {
		if err := list(o, "security", d.security, s.writeSecurityRequirement); err != nil {
			return err
		}
	}
	if d.tags != nil {
		if err := list(o, "tags", d.tags, s.writeTag); err != nil {
			return err
		}
	}
	if d.externalDocs != nil {
		if err := o.nested("externalDocs", func() error { return s.writeExternalDocs(d.externalDocs) }); err != nil {
			return err
		}
	}
	o.end()
	return nil
}

func (s *encodeState) writeInfo(info *Info) error {
	o := s.beginObject()
	o.reqStr("title", info.Title)
	o.str("description", info.Description)
	o.str("termsOfService", info.TermsOfService)
	if c := info.Contact; c != nil {
		o.key("contact")
		co := s.beginObject()
		co.str("name", c.Name)
		co.str("url", c.URL)
		co.str("email", c.Email)
		co.end()
	}
	if l := info.License; l != nil {
		o.key("license")
		lo := s.beginObject()
		lo.reqStr("name", l.Name)
		lo.str("url", l.URL)
		lo.end()
	}
	o.reqStr("version", info.Version)
	o.end()
	return nil
}

func (s *encodeState) writeServer(srv *Server) error {
	o := s.beginObject()
	o.reqStr("url", srv.URL)
	o.str("description", srv.Description)
	err := sortedField(o, "variables", srv.Variables, notNil[ServerVariable], func(v *ServerVariable) error {
		vo := s.beginObject()
		vo.strs("enum", v.Enum)
		vo.reqStr("default", v.Default)
		vo.str("description", v.Description)
		vo.end()
		return nil
	})
	if err != nil {
		return err
	}
	o.end()
	return nil
}

func (s *encodeState) writeTag(t *Tag) error {
	o := s.beginObject()
	o.reqStr("name", t.Name)
	o.str("description", t.Description)
	if t.ExternalDocs != nil {
		if err := o.nested("externalDocs", func() error { return s.writeExternalDocs(t.ExternalDocs) }); err != nil {
			return err
		}
	}
	o.end()
	return nil
}

func (s *encodeState) writeExternalDocs(docs *ExternalDocs) error {
	o := s.beginObject()
	o.str("description", docs.Description)
	o.reqStr("url", docs.URL)
	o.end()
	return nil
}

func (s *encodeState) writeComponents(c *Components) error {
	o := s.beginObject()
	if err := keyedField(o, "schemas", c.Schemas, notNil[Schema], s.writeSchema); err != nil {
		return err
	}
	if err := keyedField(o, "responses", c.Responses, notNil[Response], s.writeResponse); err != nil {
		return err
	}
	if err := keyedField(o, "parameters", c.Parameters, notNil[Parameter], s.writeParameter); err != nil {
		return err
	}
	if err := keyedField(o, "examples", c.Examples, exampleSet, s.writeExample); err != nil {
		return err
	}
	if err := keyedField(o, "requestBodies", c.RequestBodies, notNil[RequestBody], s.writeRequestBody); err != nil {
		return err
	}
	if err := keyedField(o, "headers", c.Headers, notNil[Header], s.writeHeader); err != nil {
		return err
	}
	if err := keyedField(o, "securitySchemes", c.SecuritySchemes, schemeSet, s.writeSecurityScheme); err != nil {
		return err
	}
	if err := keyedField(o, "links", c.Links, notNil[Link], s.writeLink); err != nil {
		return err
	}
	if err := keyedField(o, "callbacks", c.Callbacks, notNil[Callback], s.writeCallback); err != nil {
		return err
	}
	o.end()
	return nil
}
