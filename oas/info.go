package oas

// Info provides metadata about the API.
type Info struct {
	Title          string // Required
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string // Required. The API version, not the OpenAPI version.
}

// Contact information for the exposed API.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License information for the exposed API.
type License struct {
	Name string // Required
	URL  string
}

// Server represents a server hosting the API.
type Server struct {
	URL         string // Required
	Description string
	Variables   map[string]*ServerVariable
}

// ServerVariable is a substitution value for a server URL template.
type ServerVariable struct {
	Enum        []string
	Default     string // Required
	Description string
}

// ExternalDocs points to additional documentation.
type ExternalDocs struct {
	Description string
	URL         string // Required
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string // Required
	Description  string
	ExternalDocs *ExternalDocs
}
