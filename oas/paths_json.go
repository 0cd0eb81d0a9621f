package oas

import (
	"github.com/erraggy/oaswire/oaserrors"
)

func (s *encodeState) writePathItem(p *PathItem) error {
	o := s.beginObject()
	o.str("$ref", p.Ref)
	o.str("summary", p.Summary)
	o.str("description", p.Description)
	for _, mo := range p.Operations() {
		if err := o.nested(mo.Method, func() error { return s.writeOperation(mo.Operation) }); err != nil {
			return err
		}
	}
	if err := optList(o, "servers", p.Servers, s.writeServer); err != nil {
		return err
	}
	if err := optList(o, "parameters", p.Parameters, s.writeParameter); err != nil {
		return err
	}
	o.end()
	return nil
}

func (s *encodeState) writeOperation(op *Operation) error {
	o := s.beginObject()
	o.strs("tags", op.Tags)
	o.str("summary", op.Summary)
	o.str("description", op.Description)
	if op.ExternalDocs != nil {
		if err := o.nested("externalDocs", func() error { return s.writeExternalDocs(op.ExternalDocs) }); err != nil {
			return err
		}
	}
	o.str("operationId", op.OperationID)
	if err := optList(o, "parameters", op.Parameters, s.writeParameter); err != nil {
		return err
	}
	if op.RequestBody != nil {
		if err := o.nested("requestBody", func() error { return s.writeRequestBody(op.RequestBody) }); err != nil {
			return err
		}
	}
	if err := o.nested("responses", func() error { return s.writeResponses(op.Responses) }); err != nil {
		return err
	}
	if err := keyedField(o, "callbacks", op.Callbacks, notNil[Callback], s.writeCallback); err != nil {
		return err
	}
	o.flag("deprecated", op.Deprecated)
	if op.Security != nil {
		if err := list(o, "security", op.Security, s.writeSecurityRequirement); err != nil {
			return err
		}
	}
	if err := optList(o, "servers", op.Servers, s.writeServer); err != nil {
		return err
	}
	o.end()
	return nil
}

// writeResponses writes the default response followed by the status codes.
// A nil Responses is written as an empty object.
func (s *encodeState) writeResponses(r *Responses) error {
	o := s.beginObject()
	if r != nil {
		if r.Default != nil {
			if err := o.nested("default", func() error { return s.writeResponse(r.Default) }); err != nil {
				return err
			}
		}
		if err := writeEntries(o, r.Codes, notNil[Response], s.writeResponse); err != nil {
			return err
		}
	}
	o.end()
	return nil
}

func (s *encodeState) writeResponse(r *Response) error {
	o := s.beginObject()
	if r.Ref != "" {
		o.reqStr("$ref", r.Ref)
		o.end()
		return nil
	}
	o.reqStr("description", r.Description)
	if err := sortedField(o, "headers", r.Headers, notNil[Header], s.writeHeader); err != nil {
		return err
	}
	if err := sortedField(o, "content", r.Content, notNil[MediaType], s.writeMediaType); err != nil {
		return err
	}
	if err := sortedField(o, "links", r.Links, notNil[Link], s.writeLink); err != nil {
		return err
	}
	o.end()
	return nil
}

func (s *encodeState) writeRequestBody(rb *RequestBody) error {
	o := s.beginObject()
	if rb.Ref != "" {
		o.reqStr("$ref", rb.Ref)
		o.end()
		return nil
	}
	o.str("description", rb.Description)
	err := o.nested("content", func() error {
		return writeSorted(s, rb.Content, notNil[MediaType], s.writeMediaType)
	})
	if err != nil {
		return err
	}
	o.flag("required", rb.Required)
	o.end()
	return nil
}

func (s *encodeState) writeMediaType(mt *MediaType) error {
	o := s.beginObject()
	if mt.Schema != nil {
		if err := o.nested("schema", func() error { return s.writeSchema(mt.Schema) }); err != nil {
			return err
		}
	}
	if err := o.value("example", mt.Example); err != nil {
		return err
	}
	if err := sortedField(o, "examples", mt.Examples, exampleSet, s.writeExample); err != nil {
		return err
	}
	if err := sortedField(o, "encoding", mt.Encoding, notNil[Encoding], s.writeEncoding); err != nil {
		return err
	}
	o.end()
	return nil
}

func (s *encodeState) writeEncoding(e *Encoding) error {
	o := s.beginObject()
	o.str("contentType", e.ContentType)
	if err := sortedField(o, "headers", e.Headers, notNil[Header], s.writeHeader); err != nil {
		return err
	}
	o.str("style", string(e.Style))
	o.optBool("explode", e.Explode)
	o.flag("allowReserved", e.AllowReserved)
	o.end()
	return nil
}

// writeCallback writes each expression with its single path item. An
// expression holding any other number of paths has no valid wire form; it
// fails the encode in strict mode and is dropped in legacy mode. Nil path
// items are not counted, so an expression whose only entry is nil has zero
// paths.
func (s *encodeState) writeCallback(cb *Callback) error {
	o := s.beginObject()
	for expr, paths := range cb.All() {
		if paths == nil {
			continue
		}
		n := 0
		for _, item := range paths.All() {
			if item != nil {
				n++
			}
		}
		if n != 1 {
			if s.enc.callbackMode == CallbackStrict {
				return &oaserrors.CallbackConstraintError{
					Path:       s.path.String(),
					Expression: expr.String(),
					PathCount:  n,
				}
			}
			s.enc.logger.Warn("skipping callback expression",
				"path", s.path.String(),
				"expression", expr.String(),
				"paths", n,
			)
			continue
		}
		err := o.nested(expr.String(), func() error {
			return flatten(s, paths, notNil[PathItem], s.writePathItem)
		})
		if err != nil {
			return err
		}
	}
	o.end()
	return nil
}

func (s *encodeState) writeLink(l *Link) error {
	o := s.beginObject()
	if l.Ref != "" {
		o.reqStr("$ref", l.Ref)
		o.end()
		return nil
	}
	o.str("operationRef", l.OperationRef)
	o.str("operationId", l.OperationID)
	err := sortedField(o, "parameters", l.Parameters, func(v any) bool { return !isNil(v) }, s.writeJSON)
	if err != nil {
		return err
	}
	if err := o.value("requestBody", l.RequestBody); err != nil {
		return err
	}
	o.str("description", l.Description)
	if l.Server != nil {
		if err := o.nested("server", func() error { return s.writeServer(l.Server) }); err != nil {
			return err
		}
	}
	o.end()
	return nil
}

// exampleSet reports whether e holds a usable example, treating typed nil
// pointers like a nil interface.
func exampleSet(e Example) bool {
	switch v := e.(type) {
	case *ValueExample:
		return v != nil
	case *ExternalExample:
		return v != nil
	}
	return e != nil
}

func (s *encodeState) writeExample(e Example) error {
	o := s.beginObject()
	switch v := e.(type) {
	case *ValueExample:
		o.str("summary", v.Summary)
		o.str("description", v.Description)
		if err := o.value("value", v.Value); err != nil {
			return err
		}
	case *ExternalExample:
		o.str("summary", v.Summary)
		o.str("description", v.Description)
		o.str("externalValue", v.ExternalValue)
	default:
		return s.errorf(nil, "unsupported example type %T", e)
	}
	o.end()
	return nil
}
