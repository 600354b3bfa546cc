// Package convx converts arbitrary values into requested target types.
//
// Conversion functions are registered per (source type, target type) pair. When no exact
// function exists, the source type ancestry (declared parents, embedded structs, pointer
// elements, underlying types, known interfaces and finally interface{}) is walked and the
// first registered ancestor function is used and cached for the original pair.
//
//	converter := convx.New()
//	value, err := convx.ConvertTo[int](converter, "123")
package convx
