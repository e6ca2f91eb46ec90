package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

// Attacher is the core evaluation engine. It is stateless between calls:
// every Attach invocation is an independent, synchronous fold over the
// descriptor sequence.
type Attacher struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring the Attacher.
type Option func(*Attacher)

// WithLogger sets a structured logger for the attacher.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Attacher) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Attacher) {
		a.hooks = hooks
	}
}

// New creates an Attacher with the given options.
func New(opts ...Option) *Attacher {
	a := &Attacher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Attach evaluates descriptors against node in sequence order and commits the
// resulting fields through actions.
//
// All descriptors are checked for a predicate up front: a nil predicate is a
// *domain.ConfigurationError and nothing is processed. A validator rejection
// is a *domain.ValidationError and stops the whole call. Errors from
// CreateNodeField or a custom setter propagate unmodified.
//
// attachCtx is forwarded unchanged to every field callback; nil defaults to
// an empty map so callbacks never have to nil-check it.
func (a *Attacher) Attach(node domain.Node, actions domain.Actions, getNode domain.GetNodeFunc, descriptors []domain.Descriptor, attachCtx any) error {
	if attachCtx == nil {
		attachCtx = map[string]any{}
	}

	// Fail fast on malformed configuration before any side effects.
	for i := range descriptors {
		if descriptors[i].Predicate == nil {
			return &domain.ConfigurationError{DescriptorIndex: i, Reason: "missing predicate"}
		}
	}

	for i, desc := range descriptors {
		if !desc.Predicate(node, getNode) {
			a.logger.Debug("descriptor skipped", "index", i)
			continue
		}

		a.fireDescriptorMatch(node, i, len(desc.Fields))
		a.logger.Debug("descriptor matched", "index", i, "fields", len(desc.Fields))

		for _, spec := range desc.Fields {
			if err := a.attachField(spec, node, attachCtx, actions, getNode); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Attacher) attachField(spec domain.FieldSpec, node domain.Node, attachCtx any, actions domain.Actions, getNode domain.GetNodeFunc) error {
	value := resolve(spec, node, attachCtx, actions, getNode)

	if spec.Transform != nil {
		value = spec.Transform(value, node, attachCtx, actions, getNode)
	}

	a.fireFieldResolve(node, spec.Name, value)

	if spec.Validate != nil && !spec.Validate(value, node, attachCtx, actions, getNode) {
		return &domain.ValidationError{FieldName: spec.Name, Value: value}
	}

	if spec.Setter != nil {
		// The setter owns the commit step: zero, one, or many
		// CreateNodeField calls, with whatever shapes it chooses.
		return spec.Setter(value, node, attachCtx, actions, getNode)
	}

	if spec.Name == "" {
		// No name and no setter: nothing to commit. Permissive no-op.
		a.logger.Warn("field spec has neither name nor setter, nothing committed")
		return nil
	}

	if err := actions.CreateNodeField(domain.Field{Node: node, Name: spec.Name, Value: value}); err != nil {
		return err
	}

	a.fireFieldCreate(node, spec.Name, value)
	return nil
}

// resolve implements the value resolution order: getter first, then a direct
// property read, then default substitution. Defaults apply only when the
// resolved value is nil; false, zero, and "" must pass through untouched.
func resolve(spec domain.FieldSpec, node domain.Node, attachCtx any, actions domain.Actions, getNode domain.GetNodeFunc) any {
	var value any
	switch {
	case spec.Getter != nil:
		value = spec.Getter(node, attachCtx, actions, getNode)
	case spec.Name != "":
		value = node[spec.Name]
	}

	if value != nil {
		return value
	}

	if spec.DefaultFunc != nil {
		return spec.DefaultFunc(node, attachCtx, actions, getNode)
	}
	if spec.Default != nil {
		return spec.Default
	}
	return nil
}

func (a *Attacher) fireDescriptorMatch(node domain.Node, index, fieldCount int) {
	if a.hooks.OnDescriptorMatch == nil {
		return
	}
	a.hooks.OnDescriptorMatch(&domain.DescriptorEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventDescriptorMatch, NodeID: node.ID()},
		Index:      index,
		FieldCount: fieldCount,
	})
}

func (a *Attacher) fireFieldResolve(node domain.Node, name string, value any) {
	if a.hooks.OnFieldResolve == nil {
		return
	}
	a.hooks.OnFieldResolve(&domain.FieldEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFieldResolve, NodeID: node.ID()},
		Name:      name,
		Value:     value,
	})
}

func (a *Attacher) fireFieldCreate(node domain.Node, name string, value any) {
	if a.hooks.OnFieldCreate == nil {
		return
	}
	a.hooks.OnFieldCreate(&domain.FieldEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFieldCreate, NodeID: node.ID()},
		Name:      name,
		Value:     value,
	})
}
