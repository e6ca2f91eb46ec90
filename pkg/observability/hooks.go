package observability

import (
	"log/slog"
	"sync/atomic"

	"github.com/aretw0/espalier/pkg/domain"
)

// Merge fans every event out to all hook sets, in argument order.
func Merge(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDescriptorMatch: func(e *domain.DescriptorEvent) {
			for _, s := range sets {
				if s.OnDescriptorMatch != nil {
					s.OnDescriptorMatch(e)
				}
			}
		},
		OnFieldResolve: func(e *domain.FieldEvent) {
			for _, s := range sets {
				if s.OnFieldResolve != nil {
					s.OnFieldResolve(e)
				}
			}
		},
		OnFieldCreate: func(e *domain.FieldEvent) {
			for _, s := range sets {
				if s.OnFieldCreate != nil {
					s.OnFieldCreate(e)
				}
			}
		},
	}
}

// Logging returns hooks that log every lifecycle event through logger.
func Logging(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDescriptorMatch: func(e *domain.DescriptorEvent) {
			logger.Info("descriptor_match",
				"node_id", e.NodeID,
				"index", e.Index,
				"fields", e.FieldCount,
			)
		},
		OnFieldResolve: func(e *domain.FieldEvent) {
			logger.Debug("field_resolve",
				"node_id", e.NodeID,
				"name", e.Name,
			)
		},
		OnFieldCreate: func(e *domain.FieldEvent) {
			logger.Info("field_create",
				"node_id", e.NodeID,
				"name", e.Name,
			)
		},
	}
}

// Counter tallies attachment activity. Safe for hosts that attach from
// multiple goroutines (each individual attach call is still synchronous).
type Counter struct {
	matched  atomic.Int64
	resolved atomic.Int64
	created  atomic.Int64
}

// Hooks returns the hook set feeding this counter.
func (c *Counter) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDescriptorMatch: func(*domain.DescriptorEvent) { c.matched.Add(1) },
		OnFieldResolve:    func(*domain.FieldEvent) { c.resolved.Add(1) },
		OnFieldCreate:     func(*domain.FieldEvent) { c.created.Add(1) },
	}
}

// Matched reports how many descriptors matched.
func (c *Counter) Matched() int64 { return c.matched.Load() }

// Resolved reports how many field values were resolved.
func (c *Counter) Resolved() int64 { return c.resolved.Load() }

// Created reports how many fields were committed implicitly.
func (c *Counter) Created() int64 { return c.created.Load() }
