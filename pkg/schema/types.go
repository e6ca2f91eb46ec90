package schema

import (
	"fmt"
	"reflect"
)

// Type defines the contract for value checking.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Check reports whether a value conforms to this type.
	Check(value any) error
}

// StringType checks string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Check(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType checks integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Check(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType checks floating-point values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Check(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType checks boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Check(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// SliceType checks slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Check(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elemType.Check(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// CustomType wraps a user-supplied check function.
type CustomType struct {
	name  string
	check func(any) error
}

func (t *CustomType) Name() string          { return t.name }
func (t *CustomType) Check(value any) error { return t.check(value) }

// String returns the built-in string type.
func String() Type { return &StringType{} }

// Int returns the built-in int type.
func Int() Type { return &IntType{} }

// Float returns the built-in float type.
func Float() Type { return &FloatType{} }

// Bool returns the built-in bool type.
func Bool() Type { return &BoolType{} }

// Slice returns a slice type with the given element type.
func Slice(elem Type) Type { return &SliceType{elemType: elem} }

// Custom creates a named type from a check function.
func Custom(name string, check func(any) error) Type {
	return &CustomType{name: name, check: check}
}
