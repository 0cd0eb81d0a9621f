// Package pathutil tracks positions inside an OpenAPI document for error
// reporting and builds local component references.
//
// [PathBuilder] records the member names and array indices of a recursive
// walk with push/pop and renders them only when a problem is reported:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/users/{id}")
//	path.Push("parameters")
//	path.PushIndex(0)
//	// path.String() == "paths./users/{id}.parameters[0]"
//
// [TemplateParams] lists the {name} parameters of a path template, and
// [SchemaRef], [ParameterRef] and [RefName] build and take apart
// "#/components/..." references.
package pathutil
