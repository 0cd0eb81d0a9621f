package oas

import (
	"github.com/erraggy/oaswire/keys"
)

// SecuritySchemeType is the "type" discriminator of a security scheme.
type SecuritySchemeType string

// Security scheme types defined by OAS 3.0.
const (
	SchemeTypeAPIKey        SecuritySchemeType = "apiKey"
	SchemeTypeHTTP          SecuritySchemeType = "http"
	SchemeTypeOAuth2        SecuritySchemeType = "oauth2"
	SchemeTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// SecurityScheme is one of the four OAS 3.0 security scheme shapes:
// [*APIKeyScheme], [*HTTPScheme], [*OAuth2Scheme] or [*OpenIDConnectScheme].
// The set is closed; other packages cannot add implementations.
type SecurityScheme interface {
	// Type returns the value encoded in the "type" property.
	Type() SecuritySchemeType
	isSecurityScheme()
}

// APIKeyLocation is where an API key is sent.
type APIKeyLocation string

// API key locations.
const (
	APIKeyInQuery  APIKeyLocation = "query"
	APIKeyInHeader APIKeyLocation = "header"
	APIKeyInCookie APIKeyLocation = "cookie"
)

// APIKeyScheme authenticates with a key sent in a header, query parameter or cookie.
type APIKeyScheme struct {
	Description string
	Name        string         // Required
	In          APIKeyLocation // Required
}

// HTTPAuthScheme is an HTTP Authorization scheme from the IANA registry.
type HTTPAuthScheme string

// Registered HTTP authentication schemes.
const (
	HTTPBasic       HTTPAuthScheme = "basic"
	HTTPBearer      HTTPAuthScheme = "bearer"
	HTTPDigest      HTTPAuthScheme = "digest"
	HTTPHOBA        HTTPAuthScheme = "hoba"
	HTTPMutual      HTTPAuthScheme = "mutual"
	HTTPNegotiate   HTTPAuthScheme = "negotiate"
	HTTPOAuth       HTTPAuthScheme = "oauth"
	HTTPScramSHA1   HTTPAuthScheme = "scram-sha-1"
	HTTPScramSHA256 HTTPAuthScheme = "scram-sha-256"
	HTTPVapid       HTTPAuthScheme = "vapid"
)

// HTTPScheme authenticates with an HTTP Authorization header.
type HTTPScheme struct {
	Description  string
	Scheme       HTTPAuthScheme // Required
	BearerFormat string         // only meaningful for bearer
}

// OAuth2Scheme authenticates with one or more OAuth 2.0 flows.
// At least one flow must be set for a valid document; Document.Validate
// checks this.
type OAuth2Scheme struct {
	Description string
	Flows       OAuthFlows
}

// OpenIDConnectScheme discovers its configuration from an OpenID Connect URL.
type OpenIDConnectScheme struct {
	Description      string
	OpenIDConnectURL string // Required
}

// Type implements SecurityScheme.
func (*APIKeyScheme) Type() SecuritySchemeType { return SchemeTypeAPIKey }

// Type implements SecurityScheme.
func (*HTTPScheme) Type() SecuritySchemeType { return SchemeTypeHTTP }

// Type implements SecurityScheme.
func (*OAuth2Scheme) Type() SecuritySchemeType { return SchemeTypeOAuth2 }

// Type implements SecurityScheme.
func (*OpenIDConnectScheme) Type() SecuritySchemeType { return SchemeTypeOpenIDConnect }

func (*APIKeyScheme) isSecurityScheme()        {}
func (*HTTPScheme) isSecurityScheme()          {}
func (*OAuth2Scheme) isSecurityScheme()        {}
func (*OpenIDConnectScheme) isSecurityScheme() {}

// OAuthFlows holds the configuration of the supported OAuth flows.
// Each flow only encodes the URLs its kind uses.
type OAuthFlows struct {
	Implicit          *OAuthFlow // uses AuthorizationURL
	Password          *OAuthFlow // uses TokenURL
	ClientCredentials *OAuthFlow // uses TokenURL
	AuthorizationCode *OAuthFlow // uses AuthorizationURL and TokenURL
}

// Empty reports whether no flow is configured.
func (f OAuthFlows) Empty() bool {
	return f.Implicit == nil && f.Password == nil && f.ClientCredentials == nil && f.AuthorizationCode == nil
}

// OAuthFlow configures a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string // Required, may be empty
}

// SecurityRequirement maps security scheme names to the scopes required for
// execution. Every scheme in one requirement must be satisfied; the entries
// are encoded as sibling properties.
type SecurityRequirement = keys.Map[[]string]

// NewSecurityRequirement returns an empty requirement. An empty requirement
// encodes as {} and makes security optional when listed among alternatives.
func NewSecurityRequirement() *SecurityRequirement {
	return keys.NewMap[[]string](keys.ComponentName)
}

// Require returns a requirement for a single scheme.
// The name must be a valid component name.
func Require(scheme string, scopes ...string) (*SecurityRequirement, error) {
	req := NewSecurityRequirement()
	if scopes == nil {
		scopes = []string{}
	}
	if err := req.Set(scheme, scopes); err != nil {
		return nil, err
	}
	return req, nil
}
