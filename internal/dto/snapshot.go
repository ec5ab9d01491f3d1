package dto

import (
	"reflect"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Section returns the named snapshot section when it is record-shaped.
// Absent and malformed sections both report false.
func Section(snapshot domain.Snapshot, name string) (map[string]any, bool) {
	raw, ok := snapshot[name]
	if !ok || raw == nil {
		return nil, false
	}
	return asRecord(raw)
}

func asRecord(raw any) (map[string]any, bool) {
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// IsEmpty reports whether v carries no content: nil, false, zero numbers,
// empty strings and empty collections.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	}
	return false
}

// Length counts the items of a collection value. A non-empty scalar counts as one item.
func Length(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len()
	}
	if IsEmpty(v) {
		return 0
	}
	return 1
}

// decode converts raw into T with weak typing. Any decode failure yields the zero T.
func decode[T any](raw any) T {
	out, _ := tryDecode[T](raw)
	return out
}

func tryDecode[T any](raw any) (T, bool) {
	var out T
	if raw == nil {
		return out, false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, false
	}
	if err := dec.Decode(raw); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// decodeEach decodes every element of a list on its own and drops the ones
// that do not convert. A single value is read as a one-element list.
func decodeEach[T any](raw any) []T {
	if raw == nil {
		return nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if v, ok := tryDecode[T](raw); ok {
			return []T{v}
		}
		return nil
	}
	out := make([]T, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if v, ok := tryDecode[T](rv.Index(i).Interface()); ok {
			out = append(out, v)
		}
	}
	return out
}
