package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventDescriptorMatch EventType = "descriptor_match"
	EventFieldResolve    EventType = "field_resolve"
	EventFieldCreate     EventType = "field_create"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	NodeID    string    `json:"node_id,omitempty"`
}

// DescriptorEvent fires when a predicate matched a node.
type DescriptorEvent struct {
	EventBase
	Index      int `json:"index"`
	FieldCount int `json:"field_count"`
}

// FieldEvent fires when a field value was resolved or committed.
type FieldEvent struct {
	EventBase
	Name  string `json:"name,omitempty"`
	Value any    `json:"value,omitempty"`
}

// LifecycleHooks defines callbacks for attacher observability. Hooks are
// purely observational: they never alter resolution or commit semantics.
// FieldCreate fires only for implicit commits; the calls a custom setter makes
// through the actions handle are the host's to observe.
type LifecycleHooks struct {
	OnDescriptorMatch func(*DescriptorEvent)
	OnFieldResolve    func(*FieldEvent)
	OnFieldCreate     func(*FieldEvent)
}
