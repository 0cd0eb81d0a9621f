package oas

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/erraggy/oaswire/internal/httputil"
	"github.com/erraggy/oaswire/internal/pathutil"
	"github.com/erraggy/oaswire/oaserrors"
)

// Validate checks the cross-field rules the types cannot express: required
// security scheme members, well-formed URLs and emails, declared and required
// path parameters, unique operation ids and tag names, non-empty responses,
// and security requirements that name declared schemes.
//
// All problems are reported together in one *oaserrors.ValidationError whose
// Cause is a validation.Errors keyed by the JSON path of each problem.
func (d *Document) Validate() error {
	if d == nil || d.info == nil || d.paths == nil {
		return &oaserrors.ValidationError{Message: "document was not built"}
	}

	v := &docValidator{
		doc:          d,
		errs:         validation.Errors{},
		path:         pathutil.Get(),
		operationIDs: make(map[string]string),
	}
	defer pathutil.Put(v.path)

	v.validateInfo(d.info)
	for i, srv := range d.servers {
		v.withIndex("servers", i, func() { v.validateServer(srv) })
	}
	v.validatePaths()
	if d.components != nil {
		v.validateComponents(d.components)
	}
	for i, req := range d.security {
		v.withIndex("security", i, func() { v.validateRequirement(req) })
	}
	v.validateTags()
	if d.externalDocs != nil {
		v.with("externalDocs", func() { v.validateExternalDocs(d.externalDocs) })
	}

	if len(v.errs) == 0 {
		return nil
	}
	return &oaserrors.ValidationError{
		Message: fmt.Sprintf("document has %d problem(s)", len(v.errs)),
		Cause:   v.errs,
	}
}

type docValidator struct {
	doc  *Document
	errs validation.Errors
	path *pathutil.PathBuilder
	// operationIDs maps each operation id to where it was first seen.
	operationIDs map[string]string
}

func (v *docValidator) with(segment string, fn func()) {
	v.path.Push(segment)
	defer v.path.Pop()
	fn()
}

func (v *docValidator) withIndex(segment string, i int, fn func()) {
	v.path.Push(segment)
	v.path.PushIndex(i)
	defer func() {
		v.path.Pop()
		v.path.Pop()
	}()
	fn()
}

func (v *docValidator) at(field string) string {
	if p := v.path.String(); p != "" {
		return p + "." + field
	}
	return field
}

// check runs the ozzo rules against value and records a failure under field.
func (v *docValidator) check(field string, value any, rules ...validation.Rule) {
	if err := validation.Validate(value, rules...); err != nil {
		v.errs[v.at(field)] = err
	}
}

func (v *docValidator) fail(field, code, message string) {
	v.errs[v.at(field)] = validation.NewError(code, message)
}

func (v *docValidator) validateInfo(info *Info) {
	v.with("info", func() {
		v.check("title", info.Title, validation.Required)
		v.check("version", info.Version, validation.Required)
		v.check("termsOfService", info.TermsOfService, is.URL)
		if c := info.Contact; c != nil {
			v.with("contact", func() {
				v.check("url", c.URL, is.URL)
				v.check("email", c.Email, is.EmailFormat)
			})
		}
		if l := info.License; l != nil {
			v.with("license", func() {
				v.check("name", l.Name, validation.Required)
				v.check("url", l.URL, is.URL)
			})
		}
	})
}

func (v *docValidator) validateServer(srv *Server) {
	if srv == nil {
		return
	}
	v.check("url", srv.URL, validation.Required)
	for name, sv := range srv.Variables {
		if sv == nil {
			continue
		}
		v.with("variables", func() {
			v.with(name, func() {
				v.check("default", sv.Default, validation.Required)
			})
		})
	}
}

func (v *docValidator) validateExternalDocs(docs *ExternalDocs) {
	v.check("url", docs.URL, validation.Required, is.URL)
}

func (v *docValidator) validateTags() {
	seen := make(map[string]bool, len(v.doc.tags))
	for i, tag := range v.doc.tags {
		if tag == nil {
			continue
		}
		v.withIndex("tags", i, func() {
			v.check("name", tag.Name, validation.Required)
			if tag.Name != "" && seen[tag.Name] {
				v.fail("name", "oas.tag.duplicate", fmt.Sprintf("tag %q is already defined", tag.Name))
			}
			seen[tag.Name] = true
			if tag.ExternalDocs != nil {
				v.with("externalDocs", func() { v.validateExternalDocs(tag.ExternalDocs) })
			}
		})
	}
}

func (v *docValidator) validatePaths() {
	v.with("paths", func() {
		for tmpl, item := range v.doc.paths.All() {
			if item == nil {
				continue
			}
			v.with(tmpl.String(), func() { v.validatePathItem(tmpl.String(), item) })
		}
	})
}

func (v *docValidator) validatePathItem(tmpl string, item *PathItem) {
	v.validateParameters(item.Parameters)
	ops := item.Operations()
	for _, mo := range ops {
		v.with(mo.Method, func() { v.validateOperation(mo.Operation) })
	}

	for _, name := range pathutil.TemplateParams(tmpl) {
		if v.declaresPathParam(item.Parameters, name) {
			continue
		}
		declared := len(ops) > 0
		for _, mo := range ops {
			if !v.declaresPathParam(mo.Operation.Parameters, name) {
				declared = false
				break
			}
		}
		if !declared {
			v.fail("parameters."+name, "oas.path.param_undeclared",
				fmt.Sprintf("path parameter %q is not declared on the path item or every operation", name))
		}
	}
}

func (v *docValidator) declaresPathParam(params []*Parameter, name string) bool {
	for _, p := range params {
		if p = v.resolveParameter(p); p != nil && p.In == InPath && p.Name == name {
			return true
		}
	}
	return false
}

// resolveParameter follows a local components reference. Unresolvable
// references yield nil.
func (v *docValidator) resolveParameter(p *Parameter) *Parameter {
	if p == nil || p.Ref == "" {
		return p
	}
	name, ok := pathutil.RefName(p.Ref, pathutil.RefPrefixParameters)
	if !ok || v.doc.components == nil {
		return nil
	}
	resolved, _ := v.doc.components.Parameters.Get(name)
	return resolved
}

func (v *docValidator) validateParameters(params []*Parameter) {
	for i, p := range params {
		if p == nil || p.Ref != "" {
			continue
		}
		v.withIndex("parameters", i, func() { v.validateParameter(p) })
	}
}

func (v *docValidator) validateParameter(p *Parameter) {
	v.check("name", p.Name, validation.Required)
	v.check("in", string(p.In), validation.Required,
		validation.In(string(InQuery), string(InHeader), string(InPath), string(InCookie)))
	if p.In == InPath && !p.Required {
		v.fail("required", "oas.parameter.path_required", `must be true when "in" is "path"`)
	}
	v.validateContent(p.Content)
}

func (v *docValidator) validateOperation(op *Operation) {
	if op.OperationID != "" {
		if first, dup := v.operationIDs[op.OperationID]; dup {
			v.fail("operationId", "oas.operation.duplicate_id",
				fmt.Sprintf("operationId %q is already used at %s", op.OperationID, first))
		} else {
			v.operationIDs[op.OperationID] = v.path.String()
		}
	}
	v.validateParameters(op.Parameters)
	if rb := op.RequestBody; rb != nil && rb.Ref == "" {
		v.with("requestBody", func() { v.validateContent(rb.Content) })
	}
	if op.Responses.Len() == 0 {
		v.fail("responses", "oas.operation.responses_required", "at least one response is required")
	} else {
		v.with("responses", func() { v.validateResponses(op.Responses) })
	}
	for i, req := range op.Security {
		v.withIndex("security", i, func() { v.validateRequirement(req) })
	}
	if op.ExternalDocs != nil {
		v.with("externalDocs", func() { v.validateExternalDocs(op.ExternalDocs) })
	}
}

func (v *docValidator) validateResponses(r *Responses) {
	if r.Default != nil {
		v.with("default", func() { v.validateResponse(r.Default) })
	}
	for code, resp := range r.Codes.All() {
		if resp == nil {
			continue
		}
		v.with(code.String(), func() { v.validateResponse(resp) })
	}
}

func (v *docValidator) validateResponse(r *Response) {
	if r.Ref != "" {
		return
	}
	v.check("description", r.Description, validation.Required)
	v.validateContent(r.Content)
}

func (v *docValidator) validateContent(content map[string]*MediaType) {
	for mediaType := range content {
		if !httputil.IsValidMediaType(mediaType) {
			v.with("content", func() {
				v.fail(mediaType, "oas.content.media_type_invalid", fmt.Sprintf("invalid media type %q", mediaType))
			})
		}
	}
}

func (v *docValidator) validateRequirement(req *SecurityRequirement) {
	for name := range req.All() {
		if _, ok := v.lookupScheme(name.String()); !ok {
			v.fail(name.String(), "oas.security.scheme_undeclared",
				fmt.Sprintf("security scheme %q is not declared in components.securitySchemes", name))
		}
	}
}

func (v *docValidator) lookupScheme(name string) (SecurityScheme, bool) {
	if v.doc.components == nil {
		return nil, false
	}
	ss, ok := v.doc.components.SecuritySchemes.Get(name)
	return ss, ok && schemeSet(ss)
}

func (v *docValidator) validateComponents(c *Components) {
	v.with("components", func() {
		v.with("parameters", func() {
			for name, p := range c.Parameters.All() {
				if p == nil || p.Ref != "" {
					continue
				}
				v.with(name.String(), func() { v.validateParameter(p) })
			}
		})
		v.with("securitySchemes", func() {
			for name, ss := range c.SecuritySchemes.All() {
				if !schemeSet(ss) {
					continue
				}
				v.with(name.String(), func() { v.validateScheme(ss) })
			}
		})
	})
}

func (v *docValidator) validateScheme(ss SecurityScheme) {
	switch s := ss.(type) {
	case *APIKeyScheme:
		v.check("name", s.Name, validation.Required)
		v.check("in", string(s.In), validation.Required,
			validation.In(string(APIKeyInQuery), string(APIKeyInHeader), string(APIKeyInCookie)))
	case *HTTPScheme:
		v.check("scheme", string(s.Scheme), validation.Required)
	case *OpenIDConnectScheme:
		v.check("openIdConnectUrl", s.OpenIDConnectURL, validation.Required, is.URL)
	case *OAuth2Scheme:
		if s.Flows.Empty() {
			v.fail("flows", "oas.security.flows_required", "at least one OAuth flow is required")
			return
		}
		v.with("flows", func() { v.validateFlows(&s.Flows) })
	}
}

func (v *docValidator) validateFlows(f *OAuthFlows) {
	if f.Implicit != nil {
		v.with("implicit", func() {
			v.check("authorizationUrl", f.Implicit.AuthorizationURL, validation.Required, is.URL)
			v.validateFlowCommon(f.Implicit)
		})
	}
	if f.Password != nil {
		v.with("password", func() {
			v.check("tokenUrl", f.Password.TokenURL, validation.Required, is.URL)
			v.validateFlowCommon(f.Password)
		})
	}
	if f.ClientCredentials != nil {
		v.with("clientCredentials", func() {
			v.check("tokenUrl", f.ClientCredentials.TokenURL, validation.Required, is.URL)
			v.validateFlowCommon(f.ClientCredentials)
		})
	}
	if f.AuthorizationCode != nil {
		v.with("authorizationCode", func() {
			v.check("authorizationUrl", f.AuthorizationCode.AuthorizationURL, validation.Required, is.URL)
			v.check("tokenUrl", f.AuthorizationCode.TokenURL, validation.Required, is.URL)
			v.validateFlowCommon(f.AuthorizationCode)
		})
	}
}

func (v *docValidator) validateFlowCommon(flow *OAuthFlow) {
	v.check("refreshUrl", flow.RefreshURL, is.URL)
	v.check("scopes", flow.Scopes, validation.NotNil)
}
