package audit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"confdesk/core/store"
)

// Sanitize converts a snapshot into a JSON-safe tree. Dates become YYYY-MM-DD,
// timestamps RFC 3339, maps and slices are walked recursively, primitives pass
// through, and any other value is stringified.
func Sanitize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	case store.Date:
		if val.IsZero() {
			return nil
		}
		return val.String()
	case *store.Date:
		if val == nil || val.IsZero() {
			return nil
		}
		return val.String()
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(time.RFC3339Nano)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	}
	return sanitizeReflect(reflect.ValueOf(v))
}

func sanitizeReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Sanitize(rv.Elem().Interface())
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Sanitize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Sanitize(rv.Index(i).Interface())
		}
		return out
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(rv.Interface())
}

// Encode sanitizes a snapshot and renders it as a JSON document. A nil snapshot is "{}".
func Encode(snapshot any) (string, error) {
	if snapshot == nil {
		return "{}", nil
	}
	b, err := json.Marshal(Sanitize(snapshot))
	if err != nil {
		return "", fmt.Errorf("encode audit snapshot: %w", err)
	}
	return string(b), nil
}
