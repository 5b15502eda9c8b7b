package common

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Accepted timestamp layouts. Values without an offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime is a request timestamp that also accepts the offset-less forms
// sent by HTML date and datetime-local inputs
type DateTime struct {
	time.Time
}

// ParseDateTime parses s with the accepted layouts
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for query parameters
func (d *DateTime) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}
	t, err := ParseDateTime(param)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Ptr returns the value as *time.Time, nil when d is nil or unset
func (d *DateTime) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
