package espalier

import (
	"io"
	"log/slog"

	"github.com/aretw0/espalier/internal/runtime"
	"github.com/aretw0/espalier/pkg/domain"
)

// Version is the library release marker, consumed by the CLI.
var Version = "0.4.0"

// Attacher is the high-level entry point for the Espalier library.
// It wraps the internal runtime and provides a simplified API for consumers
// that attach fields to many nodes with the same configuration.
type Attacher struct {
	runtime *runtime.Attacher
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	context any
}

// Option defines a functional option for configuring the Attacher.
type Option func(*Attacher)

// WithLogger sets a custom structured logger for the attacher.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Attacher) {
		a.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Attacher) {
		a.hooks = hooks
	}
}

// WithContext sets the attach context forwarded to every field callback.
// The value is passed through unchanged; it is owned entirely by the caller.
// When omitted, callbacks receive an empty map.
func WithContext(ctx any) Option {
	return func(a *Attacher) {
		a.context = ctx
	}
}

// New initializes a new Espalier Attacher.
func New(opts ...Option) *Attacher {
	a := &Attacher{}
	for _, opt := range opts {
		opt(a)
	}

	// Ensure logger is initialized so we don't pass nil to the runtime.
	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	a.runtime = runtime.New(
		runtime.WithLogger(a.logger),
		runtime.WithLifecycleHooks(a.hooks),
	)
	return a
}

// Attach evaluates descriptors against node in order and commits matching
// fields through actions. See the package documentation for the resolution
// algorithm and error semantics.
func (a *Attacher) Attach(node domain.Node, actions domain.Actions, getNode domain.GetNodeFunc, descriptors []domain.Descriptor) error {
	return a.runtime.Attach(node, actions, getNode, descriptors, a.context)
}

// AttachFields is the one-shot form of the host contract: it mirrors the
// host-callback signature one to one and needs no pre-built Attacher.
// context may be nil, in which case callbacks receive an empty map.
func AttachFields(node domain.Node, actions domain.Actions, getNode domain.GetNodeFunc, descriptors []domain.Descriptor, context any) error {
	return New(WithContext(context)).Attach(node, actions, getNode, descriptors)
}
