package pathutil

import "strings"

// Local reference prefixes for each OpenAPI 3.0 components section.
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixResponses       = "#/components/responses/"
	RefPrefixParameters      = "#/components/parameters/"
	RefPrefixExamples        = "#/components/examples/"
	RefPrefixRequestBodies   = "#/components/requestBodies/"
	RefPrefixHeaders         = "#/components/headers/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
	RefPrefixLinks           = "#/components/links/"
	RefPrefixCallbacks       = "#/components/callbacks/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + name
}

// RefName returns the component name a local reference points to when ref
// starts with prefix.
//
//	RefName("#/components/parameters/limit", RefPrefixParameters) // "limit", true
func RefName(ref, prefix string) (string, bool) {
	name, ok := strings.CutPrefix(ref, prefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
