/*
Package dsl provides a fluent builder for programmatically constructing
descriptor sets.

It lets consumers define field-attachment rules using a type-safe, chainable
API instead of hand-assembling domain structs or external YAML manifests. This
is particularly useful for plugin code, unit tests, and leveraging IDE
autocompletion.

Example usage:

	descriptors := dsl.New().
		When(isMarkdown).
		Field("slug").Getter(slugFromPath).
		Field("draft").Default(false).
		Build()

The resulting slice feeds directly into espalier.AttachFields.
*/
package dsl
