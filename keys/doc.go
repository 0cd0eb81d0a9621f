// Package keys provides validated string keys and the insertion-ordered map
// that OpenAPI dynamic-key objects are built from.
//
// Several OpenAPI objects use their map keys as data: the paths object is
// keyed by path templates, responses by status codes, components by names
// restricted to ^[A-Za-z0-9._-]+$. A [Key] is a string that has been checked
// against one of these grammars once, at construction, and cannot change
// afterwards.
//
// # Keys
//
//	k, err := keys.New("/users/{id}", keys.PathTemplate)
//	if err != nil {
//		// err is an *oaserrors.InvalidKeyError
//	}
//
// # Maps
//
// A [Map] binds every key to one [Pattern] and remembers insertion order:
//
//	responses := keys.NewMap[*oas.Response](keys.StatusCode)
//	_ = responses.Set("200", ok)
//	_ = responses.Set("4XX", clientError)
//	if err := responses.Set("600", nope); err != nil {
//		// rejected, responses is unchanged
//	}
//
//	for k, v := range responses.All() {
//		fmt.Println(k, v.Description) // "200" first, then "4XX"
//	}
//
// Lookups with [Map.Get] re-validate the raw string and report an invalid key
// as absent rather than as an error.
package keys
