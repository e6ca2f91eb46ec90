/*
Package domain contains the core domain models for the Espalier attacher.

It defines the entities of the field-attachment contract: Nodes, Descriptors,
Field specifications, and the Actions capability set the host exposes. This
package is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Node: An opaque content record supplied by the host build pipeline.
  - Descriptor: A predicate-guarded group of field specifications.
  - FieldSpec: Per-field configuration (getter/default/transform/validate/setter).
  - Field: The payload shape delivered to the host's CreateNodeField action.
  - Actions: The capability set through which all side effects flow.
*/
package domain
