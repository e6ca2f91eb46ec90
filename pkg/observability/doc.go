/*
Package observability provides tooling around the attacher's lifecycle hooks.

It includes hook merging for fanning events out to multiple consumers, a
slog-backed hook set for audit logging, and an atomic counter for tallying
attachment activity (e.g. to feed Prometheus collectors, as shown in
examples/structured-logging).
*/
package observability
