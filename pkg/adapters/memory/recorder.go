package memory

import (
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// Recorder implements domain.Actions, recording every created field in call
// order. Like a real host, it also mirrors created fields onto the node under
// a "fields" sub-map, which is the one mutation the contract allows.
type Recorder struct {
	mu     sync.Mutex
	fields []domain.Field
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateNodeField records the field and mirrors it onto the node.
func (r *Recorder) CreateNodeField(field domain.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fields = append(r.fields, field)

	if field.Node != nil && field.Name != "" {
		bag, ok := field.Node["fields"].(map[string]any)
		if !ok {
			bag = make(map[string]any)
			field.Node["fields"] = bag
		}
		bag[field.Name] = field.Value
	}
	return nil
}

// Fields returns the recorded calls in order.
func (r *Recorder) Fields() []domain.Field {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = nil
}
