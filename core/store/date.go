package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or zone. It is stored as YYYY-MM-DD text.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Time() time.Time { return d.t }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	if parsed == nil {
		*d = Date{}
		return nil
	}
	*d = *parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.t.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	}
	return fmt.Errorf("store: cannot scan %T into Date", src)
}

func (d *Date) scanText(s string) error {
	parsed, err := parseDateString(s)
	if err != nil {
		return err
	}
	if parsed == nil {
		*d = Date{}
		return nil
	}
	*d = *parsed
	return nil
}

var ErrInvalidDate = errors.New("invalid date")

// ParseDate applies the payload date rule: nil or "" give nil, Date and time.Time
// values are truncated to their calendar date, and strings must start with a
// valid YYYY-MM-DD. Anything else is ErrInvalidDate.
func ParseDate(v any) (*Date, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case Date:
		if val.IsZero() {
			return nil, nil
		}
		return &val, nil
	case *Date:
		if val == nil || val.IsZero() {
			return nil, nil
		}
		out := *val
		return &out, nil
	case time.Time:
		if val.IsZero() {
			return nil, nil
		}
		d := DateOf(val)
		return &d, nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return nil, nil
		}
		d := DateOf(*val)
		return &d, nil
	case string:
		return parseDateString(val)
	case json.RawMessage:
		var raw any
		if err := json.Unmarshal(val, &raw); err != nil {
			return nil, ErrInvalidDate
		}
		if _, nested := raw.(json.RawMessage); nested {
			return nil, ErrInvalidDate
		}
		return ParseDate(raw)
	}
	return nil, ErrInvalidDate
}

func parseDateString(s string) (*Date, error) {
	if s == "" {
		return nil, nil
	}
	head := s
	if len(head) > len(DateLayout) {
		head = head[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(head))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d := DateOf(t)
	return &d, nil
}

// MustParseDate is for fixed literals in templates and tests.
func MustParseDate(s string) Date {
	d, err := parseDateString(s)
	if err != nil || d == nil {
		panic(fmt.Sprintf("store: bad date literal %q", s))
	}
	return *d
}

func nullableDate(d *Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.String()
}
