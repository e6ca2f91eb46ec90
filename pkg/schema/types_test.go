package schema_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/espalier/pkg/schema"
)

func TestBuiltinTypes(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.NoError(t, schema.String().Check("hi"))
		assert.Error(t, schema.String().Check(42))
		assert.Error(t, schema.String().Check(nil))
	})

	t.Run("Int", func(t *testing.T) {
		assert.NoError(t, schema.Int().Check(3))
		assert.NoError(t, schema.Int().Check(int64(3)))
		// Whole floats come out of JSON unmarshaling.
		assert.NoError(t, schema.Int().Check(float64(3)))
		assert.Error(t, schema.Int().Check(3.5))
		assert.Error(t, schema.Int().Check("3"))
	})

	t.Run("Float", func(t *testing.T) {
		assert.NoError(t, schema.Float().Check(3.5))
		assert.NoError(t, schema.Float().Check(3))
		assert.Error(t, schema.Float().Check("3.5"))
	})

	t.Run("Bool", func(t *testing.T) {
		assert.NoError(t, schema.Bool().Check(true))
		assert.Error(t, schema.Bool().Check("true"))
	})
}

func TestSliceType(t *testing.T) {
	tags := schema.Slice(schema.String())
	assert.Equal(t, "[string]", tags.Name())

	assert.NoError(t, tags.Check([]string{"a", "b"}))
	assert.NoError(t, tags.Check([]any{"a", "b"}))
	assert.Error(t, tags.Check("not-a-slice"))

	err := tags.Check([]any{"a", 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestCustomType(t *testing.T) {
	positive := schema.Custom("positive", func(v any) error {
		i, ok := v.(int)
		if !ok || i <= 0 {
			return fmt.Errorf("expected positive int")
		}
		return nil
	})

	assert.Equal(t, "positive", positive.Name())
	assert.NoError(t, positive.Check(1))
	assert.Error(t, positive.Check(-1))
	assert.Error(t, positive.Check("1"))
}

func TestValidatorAdapter(t *testing.T) {
	v := schema.Validator(schema.String())
	assert.True(t, v("hi", nil, nil, nil, nil))
	assert.False(t, v(42, nil, nil, nil, nil))
}
