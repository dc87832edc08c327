package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for date-time fields, tried in order. An
// offset-qualified value is never reinterpreted as local time, and the
// date-only layout is tried last because it is the most permissive.
const (
	layoutDateTimeNoSeconds = "2006-01-02T15:04"
	layoutDateTimeNoZone    = "2006-01-02T15:04:05"
	layoutDateOnly          = "2006-01-02"
)

// MalformedDateTimeError reports a date-time value that matches none of
// the accepted layouts. It carries the offending text.
type MalformedDateTimeError struct {
	Value string
}

func (e *MalformedDateTimeError) Error() string {
	return fmt.Sprintf(
		"cannot parse date-time %q: use ISO-8601 format, e.g. 2026-02-18T14:08, 2026-02-18T14:08:00, or 2026-02-18T14:08:00Z",
		e.Value,
	)
}

// DateTime is a JSON date-time accepting the flexible input layouts
// above and always emitting the UTC offset-qualified RFC3339 form.
// A blank input leaves the value zero, meaning "not set".
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

// DateTimeFromPtr wraps an optional timestamp, keeping nil as nil.
func DateTimeFromPtr(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	return &DateTime{Time: *t}
}

// TimeOrNil returns the wrapped timestamp, or nil when the value is
// absent or was parsed from a blank string.
func (d *DateTime) TimeOrNil() *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &MalformedDateTimeError{Value: string(data)}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// ParseDateTime parses an ISO-8601-like value, trying in order: full
// RFC3339 with offset or UTC marker, date-time without seconds (local
// zone), date-time with seconds (local zone), and date only (start of
// day, local zone).
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTimeNoSeconds, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTimeNoZone, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateOnly, value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, &MalformedDateTimeError{Value: value}
}
