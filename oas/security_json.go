package oas

// schemeSet reports whether ss holds a usable scheme, treating typed nil
// pointers like a nil interface.
func schemeSet(ss SecurityScheme) bool {
	switch v := ss.(type) {
	case *APIKeyScheme:
		return v != nil
	case *HTTPScheme:
		return v != nil
	case *OAuth2Scheme:
		return v != nil
	case *OpenIDConnectScheme:
		return v != nil
	}
	return ss != nil
}

// writeSecurityScheme writes "type" first, then the members of the variant.
func (s *encodeState) writeSecurityScheme(ss SecurityScheme) error {
	o := s.beginObject()
	switch v := ss.(type) {
	case *APIKeyScheme:
		o.reqStr("type", string(v.Type()))
		o.str("description", v.Description)
		o.reqStr("name", v.Name)
		o.reqStr("in", string(v.In))
	case *HTTPScheme:
		o.reqStr("type", string(v.Type()))
		o.str("description", v.Description)
		o.reqStr("scheme", string(v.Scheme))
		o.str("bearerFormat", v.BearerFormat)
	case *OAuth2Scheme:
		o.reqStr("type", string(v.Type()))
		o.str("description", v.Description)
		if err := o.nested("flows", func() error { return s.writeOAuthFlows(&v.Flows) }); err != nil {
			return err
		}
	case *OpenIDConnectScheme:
		o.reqStr("type", string(v.Type()))
		o.str("description", v.Description)
		o.reqStr("openIdConnectUrl", v.OpenIDConnectURL)
	default:
		return s.errorf(nil, "unsupported security scheme type %T", ss)
	}
	o.end()
	return nil
}

type flowKind int

const (
	flowImplicit flowKind = iota
	flowPassword
	flowClientCredentials
	flowAuthorizationCode
)

func (s *encodeState) writeOAuthFlows(f *OAuthFlows) error {
	o := s.beginObject()
	flows := [...]struct {
		name string
		kind flowKind
		flow *OAuthFlow
	}{
		{"implicit", flowImplicit, f.Implicit},
		{"password", flowPassword, f.Password},
		{"clientCredentials", flowClientCredentials, f.ClientCredentials},
		{"authorizationCode", flowAuthorizationCode, f.AuthorizationCode},
	}
	for _, fl := range flows {
		if fl.flow == nil {
			continue
		}
		if err := o.nested(fl.name, func() error { return s.writeOAuthFlow(fl.kind, fl.flow) }); err != nil {
			return err
		}
	}
	o.end()
	return nil
}

// writeOAuthFlow writes only the URLs the flow kind defines. Scopes are
// required and written as {} when none are set.
func (s *encodeState) writeOAuthFlow(kind flowKind, f *OAuthFlow) error {
	o := s.beginObject()
	switch kind {
	case flowImplicit:
		o.reqStr("authorizationUrl", f.AuthorizationURL)
	case flowPassword, flowClientCredentials:
		o.reqStr("tokenUrl", f.TokenURL)
	case flowAuthorizationCode:
		o.reqStr("authorizationUrl", f.AuthorizationURL)
		o.reqStr("tokenUrl", f.TokenURL)
	}
	o.str("refreshUrl", f.RefreshURL)
	err := o.nested("scopes", func() error {
		return writeSorted(s, f.Scopes, always[string], func(v string) error {
			s.writeString(v)
			return nil
		})
	})
	if err != nil {
		return err
	}
	o.end()
	return nil
}

// writeSecurityRequirement writes one requirement as an object of scheme
// names to scope lists. An empty requirement is written as {}.
func (s *encodeState) writeSecurityRequirement(req *SecurityRequirement) error {
	return flatten(s, req, always[[]string], func(scopes []string) error {
		s.writeStrings(scopes)
		return nil
	})
}
