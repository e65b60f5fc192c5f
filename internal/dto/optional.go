package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Optional tracks whether a request field was supplied. An absent field is
// the zero Optional and is dropped from the JSON body (omitzero); an explicit
// null is kept as null; anything else is Set with its Value.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Get returns the value and whether it is present and non-null.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}

// Elem reports the wrapped type. Schema generation uses it to describe
// optional fields.
func (Optional[T]) Elem() reflect.Type {
	return reflect.TypeFor[T]()
}

func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}
