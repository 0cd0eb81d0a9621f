// Package oas models OpenAPI 3.0 documents and encodes them to the exact
// OpenAPI 3.0.0 JSON wire shape.
//
// The model is typed all the way down: dynamic-key objects (paths,
// responses, callbacks, security requirements, component maps and schema
// properties) are [keys.Map] values whose keys were validated when they were
// inserted, security schemes and examples are closed sets of variants, and a
// schema's additionalProperties is a three-state value rather than an any.
//
// # Quick Start
//
//	paths := oas.NewPaths()
//	responses := oas.NewResponses(nil)
//	_ = responses.Set("200", &oas.Response{Description: "OK"})
//	_ = paths.Set("/users", &oas.PathItem{
//		Get: &oas.Operation{OperationID: "listUsers", Responses: responses},
//	})
//
//	doc, err := oas.Build(&oas.Info{Title: "Users", Version: "1.0"}, nil, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := oas.Encode(doc)
//
// # Wire Shape
//
// Every entry of a dynamic-key object becomes a direct property of the
// enclosing JSON object, named by its raw key, in insertion order:
//
//	{"paths":{"/users":{...},"/users/{id}":{...}}}
//
// Plain Go maps (content, headers, scopes, server variables and the like) are
// written with their keys sorted, so output is byte-for-byte deterministic.
// Empty strings, nil pointers and false flags are omitted, and null is never
// written. The servers member is always present, as [] when there are none.
//
// # Callbacks
//
// A callback maps each runtime expression to exactly one path. With the
// default [CallbackStrict] mode, an expression holding any other number of
// paths fails the encode with an *oaserrors.CallbackConstraintError.
// [CallbackLegacy] drops such expressions and logs a warning instead:
//
//	enc := oas.NewEncoder(oas.WithCallbackMode(oas.CallbackLegacy), oas.WithLogger(logger))
//
// # Validation
//
// [Document.Validate] checks rules the types cannot express, such as OAuth
// flow URLs and declared path parameters. Pass [WithValidation] to run it
// before every encode.
//
// # Concurrency
//
// A Document is immutable once built and an [Encoder] holds only
// configuration; both may be shared by any number of goroutines.
package oas
