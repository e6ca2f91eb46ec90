/*
Package ports defines the driven ports (interfaces) for the Espalier attacher.

These interfaces decouple the attacher and its tooling from external
implementations, allowing nodes to come from memory, the filesystem, or
whatever store the host pipeline uses.

# Key Interfaces

  - NodeSource: Responsible for retrieving Node records by ID (Memory, File).
*/
package ports
