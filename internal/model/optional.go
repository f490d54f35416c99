package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional holds a value that may be absent from the report record.
//
// Two predicates are exposed and they are deliberately different:
//   - Defined reports whether the field was supplied at all.
//   - Truthy reports whether the field was supplied with a non-zero value.
//
// An empty string that was explicitly supplied is Defined but not Truthy.
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some returns a defined Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an undefined Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Defined reports whether the field was supplied.
func (o Optional[T]) Defined() bool {
	return o.set
}

// Truthy reports whether the field was supplied with a non-zero value.
func (o Optional[T]) Truthy() bool {
	var zero T
	return o.set && o.value != zero
}

// Value returns the held value, or the zero value when undefined.
func (o Optional[T]) Value() T {
	return o.value
}

// Get returns the held value and whether it is defined.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsZero lets yaml omitempty drop undefined fields.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// UnmarshalYAML marks the field defined. yaml.v3 does not call this for
// missing keys or explicit nulls, so both stay undefined.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}

// MarshalYAML encodes an undefined field as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalJSON marks the field defined unless the JSON value is null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = v
	o.set = true
	return nil
}

// MarshalJSON encodes an undefined field as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
