// Package model defines the core domain types shared across the application.
package model

import (
	"strings"
	"time"
)

// Date is a calendar date with ISO YYYY-MM-DD wire semantics.
// Null, empty, or malformed values decode to the zero Date rather than
// failing, so one bad record never poisons a whole job feed.
type Date time.Time

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date(time.Time{})
		return nil
	}

	s = strings.Trim(s, `"`)
	if s == "" {
		*d = Date(time.Time{})
		return nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		*d = Date(time.Time{})
		return nil
	}

	*d = Date(t)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// Time returns the time.Time representation.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Format formats the date using the given layout.
func (d Date) Format(layout string) string {
	return time.Time(d).Format(layout)
}

// IsZero reports whether the date is zero (absent or unparseable).
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Job represents a single scheduled cleaning job as supplied by the
// scheduling backend. Every field is optional; consumers apply defined
// defaults instead of failing on absent data. Jobs are read-only to this
// application and are never persisted back to the source.
type Job struct {
	ID          string `json:"id,omitempty"`
	Date        Date   `json:"date"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Client      string `json:"client,omitempty"`
	Address     string `json:"address,omitempty"`
	Title       string `json:"title,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ClassificationSource returns the text the service classifier should use
// for this job. The scheduling backend is inconsistent about which field
// carries the service description, so service_type wins over title when
// both are set.
func (j *Job) ClassificationSource() string {
	if j.ServiceType != "" {
		return j.ServiceType
	}
	return j.Title
}

// TimeRange formats the start/end times for display, tolerating either or
// both being absent.
func (j *Job) TimeRange() string {
	switch {
	case j.Start != "" && j.End != "":
		return j.Start + " - " + j.End
	case j.Start != "":
		return j.Start
	default:
		return ""
	}
}
