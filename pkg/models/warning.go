package models

import (
	"fmt"
	"time"
)

// ISOTime serializes a timestamp as an ISO-8601 string, the format the
// config document has always used on disk.
type ISOTime struct {
	time.Time
}

// NewISOTime wraps t for persistence.
func NewISOTime(t time.Time) ISOTime {
	return ISOTime{Time: t}
}

// MarshalJSON writes the timestamp as an RFC 3339 string with
// sub-second precision.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON accepts RFC 3339 timestamps with or without sub-second
// precision or zone offset.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp: %s", s)
	}
	s = s[1 : len(s)-1]

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp: %q", s)
}

// WarningRecord is a single warning in a user's ledger. Records are
// immutable: they are only ever appended or bulk-cleared.
type WarningRecord struct {
	Reason    string  `json:"reason"`
	Moderator int64   `json:"moderator"`
	Timestamp ISOTime `json:"timestamp"`
}
