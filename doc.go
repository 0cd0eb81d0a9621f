// Package oaswire builds OpenAPI 3.0 documents in Go and encodes them to the
// exact OpenAPI 3.0.0 wire shape.
//
// # Overview
//
// The module consists of three packages:
//
//   - keys: validated keys (component names, path templates, status codes,
//     callback expressions) and the insertion-ordered map built from them
//   - oas: the document model, the flattening JSON/YAML encoder and strict
//     document validation
//   - oaserrors: structured error types shared by both
//
// # Installation
//
//	go get github.com/erraggy/oaswire
//
// # Quick Start
//
//	import "github.com/erraggy/oaswire/oas"
//
//	responses := oas.NewResponses(nil)
//	_ = responses.Set("200", &oas.Response{Description: "OK"})
//
//	paths := oas.NewPaths()
//	_ = paths.Set("/health", &oas.PathItem{
//		Get: &oas.Operation{OperationID: "health", Responses: responses},
//	})
//
//	doc, err := oas.Build(&oas.Info{Title: "Status", Version: "1.0"}, nil, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := oas.NewEncoder(oas.WithValidation(true)).Encode(doc)
//
// Invalid keys are rejected where they enter the model:
//
//	if err := paths.Set("health", item); errors.Is(err, oaserrors.ErrInvalidKey) {
//		// path templates must start with "/"
//	}
//
// # Scope
//
// oaswire only produces documents. It does not parse them, serve them over
// HTTP, or register routes.
package oaswire
