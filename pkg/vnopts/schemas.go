package vnopts

import "math"

// AnySchema accepts every value. Used for unconstrained buckets such as
// positional CLI arguments.
type AnySchema struct {
	baseSchema
}

func NewAnySchema(name string) *AnySchema {
	return &AnySchema{baseSchema{name: name}}
}

func (s *AnySchema) Expected(*Utils) string { return "anything" }

func (s *AnySchema) Validate(any, *Utils) bool { return true }

// BooleanSchema accepts boolean values.
type BooleanSchema struct {
	baseSchema
}

func NewBooleanSchema(name string) *BooleanSchema {
	return &BooleanSchema{baseSchema{name: name}}
}

func (s *BooleanSchema) Expected(*Utils) string { return "a boolean" }

func (s *BooleanSchema) Validate(value any, _ *Utils) bool {
	_, ok := value.(bool)
	return ok
}

// IntegerSchema accepts integral numbers. Floats are accepted when they
// carry no fractional part, since JSON and CLI coercion both produce
// float64 values.
type IntegerSchema struct {
	baseSchema
}

func NewIntegerSchema(name string) *IntegerSchema {
	return &IntegerSchema{baseSchema{name: name}}
}

func (s *IntegerSchema) Expected(*Utils) string { return "an integer" }

func (s *IntegerSchema) Validate(value any, _ *Utils) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(v)) && float64(v) == math.Trunc(float64(v))
	case float64:
		return !math.IsNaN(v) && v == math.Trunc(v)
	default:
		return false
	}
}

// StringSchema accepts string values.
type StringSchema struct {
	baseSchema
}

func NewStringSchema(name string) *StringSchema {
	return &StringSchema{baseSchema{name: name}}
}

func (s *StringSchema) Expected(*Utils) string { return "a string" }

func (s *StringSchema) Validate(value any, _ *Utils) bool {
	_, ok := value.(string)
	return ok
}
