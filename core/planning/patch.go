package planning

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"confdesk/core/apperr"
	"confdesk/core/store"
)

// Patch is a decoded JSON object. Keys outside an operation's allow-list are ignored.
type Patch map[string]any

func (p Patch) has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Patch) requiredString(key string) (string, error) {
	s, ok := p[key].(string)
	if !ok {
		return "", apperr.Invalid(key, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperr.Required(key)
	}
	return s, nil
}

func (p Patch) optionalString(key string) (*string, error) {
	switch v := p[key].(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, apperr.Invalid(key, "must be a string or null")
	}
}

func (p Patch) integer(key string) (int, error) {
	switch v := p[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, apperr.Invalid(key, "must be an integer")
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, apperr.Invalid(key, "must be an integer")
		}
		return int(n), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, apperr.Invalid(key, "must be an integer")
	}
}

func (p Patch) date(key string) (*store.Date, error) {
	d, err := store.ParseDate(p[key])
	if err != nil {
		return nil, apperr.InvalidDate(key, p[key], err)
	}
	return d, nil
}

func (p Patch) requiredDate(key string) (store.Date, error) {
	d, err := p.date(key)
	if err != nil {
		return store.Date{}, err
	}
	if d == nil {
		return store.Date{}, apperr.Required(key)
	}
	return *d, nil
}

// parseInputDate applies the date rule to a typed input field.
func parseInputDate(field string, raw any) (*store.Date, error) {
	d, err := store.ParseDate(raw)
	if err != nil {
		return nil, apperr.InvalidDate(field, raw, err)
	}
	return d, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
