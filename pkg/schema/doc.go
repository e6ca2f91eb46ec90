/*
Package schema provides a small type system for checking field values.

It defines built-in types (string, int, float, bool), slices, and custom
checks. Types adapt directly into field validators, letting descriptor authors
enforce value shapes without hand-writing validator closures:

	dsl.New().Always().
		Field("tags").Validate(schema.Validator(schema.Slice(schema.String())))

This package is library-agnostic, with zero dependencies beyond the Go
standard library and the domain callback shapes.
*/
package schema
