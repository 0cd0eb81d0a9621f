package oas_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/erraggy/oaswire/oas"
	"github.com/erraggy/oaswire/oaserrors"
)

func Example() {
	doc, err := oas.Build(&oas.Info{Title: "Test", Version: "1.0"}, nil, oas.NewPaths())
	if err != nil {
		log.Fatal(err)
	}
	data, err := oas.Encode(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"openapi":"3.0.0","info":{"title":"Test","version":"1.0"},"servers":[],"paths":{}}
}

func ExampleEncoder_Encode() {
	responses := oas.NewResponses(&oas.Response{Description: "Unexpected error"})
	_ = responses.Set("200", &oas.Response{Description: "OK"})

	paths := oas.NewPaths()
	_ = paths.Set("/users/{id}", &oas.PathItem{
		Parameters: []*oas.Parameter{oas.PathParameter("id", &oas.Schema{Type: oas.TypeString})},
		Get:        &oas.Operation{OperationID: "getUser", Responses: responses},
	})

	doc, err := oas.Build(&oas.Info{Title: "Users", Version: "1.0"}, nil, paths)
	if err != nil {
		log.Fatal(err)
	}
	data, err := oas.NewEncoder(oas.WithIndent("", "  "), oas.WithValidation(true)).Encode(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output:
	// {
	//   "openapi": "3.0.0",
	//   "info": {
	//     "title": "Users",
	//     "version": "1.0"
	//   },
	//   "servers": [],
	//   "paths": {
	//     "/users/{id}": {
	//       "get": {
	//         "operationId": "getUser",
	//         "responses": {
	//           "default": {
	//             "description": "Unexpected error"
	//           },
	//           "200": {
	//             "description": "OK"
	//           }
	//         }
	//       },
	//       "parameters": [
	//         {
	//           "name": "id",
	//           "in": "path",
	//           "required": true,
	//           "schema": {
	//             "type": "string"
	//           }
	//         }
	//       ]
	//     }
	//   }
	// }
}

func ExampleWithCallbackMode() {
	target := oas.NewPaths()
	_ = target.Set("/a", &oas.PathItem{})
	_ = target.Set("/b", &oas.PathItem{})
	cb := oas.NewCallback()
	_ = cb.Set("{$request.body#/url}", target)
	callbacks := oas.NewCallbacks()
	_ = callbacks.Set("onEvent", cb)

	responses := oas.NewResponses(&oas.Response{Description: "OK"})
	paths := oas.NewPaths()
	_ = paths.Set("/subscribe", &oas.PathItem{Post: &oas.Operation{Responses: responses, Callbacks: callbacks}})
	doc, _ := oas.Build(&oas.Info{Title: "Hooks", Version: "1.0"}, nil, paths)

	_, err := oas.Encode(doc)
	var cbErr *oaserrors.CallbackConstraintError
	if errors.As(err, &cbErr) {
		fmt.Println("strict:", cbErr.Expression, cbErr.PathCount)
	}

	data, _ := oas.NewEncoder(oas.WithCallbackMode(oas.CallbackLegacy)).Encode(doc)
	fmt.Println("legacy:", string(data))
	// Output:
	// strict: {$request.body#/url} 2
	// legacy: {"openapi":"3.0.0","info":{"title":"Hooks","version":"1.0"},"servers":[],"paths":{"/subscribe":{"post":{"responses":{"default":{"description":"OK"}},"callbacks":{"onEvent":{}}}}}}
}

func ExampleEncoder_EncodeYAML() {
	doc, _ := oas.Build(&oas.Info{Title: "Test", Version: "1.0"}, nil, oas.NewPaths())
	data, err := oas.NewEncoder().EncodeYAML(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// openapi: 3.0.0
	// info:
	//   title: Test
	//   version: "1.0"
	// servers: []
	// paths: {}
}
