package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

// Ledgers written by earlier versions carry timestamps in several ISO-8601
// variants; all of them must keep parsing.
func TestISOTimeAcceptedFormats(t *testing.T) {
	inputs := []string{
		`"2026-03-14T15:09:26.535898Z"`,
		`"2026-03-14T15:09:26Z"`,
		`"2026-03-14T15:09:26.535898"`,
		`"2026-03-14T15:09:26"`,
		`"2026-03-14T15:09:26+02:00"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var ts ISOTime
			if err := json.Unmarshal([]byte(input), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", input, err)
			}
			if ts.IsZero() {
				t.Errorf("Unmarshal(%s) produced a zero time", input)
			}
		})
	}
}

func TestISOTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `42`, `""`} {
		var ts ISOTime
		if err := json.Unmarshal([]byte(input), &ts); err == nil {
			t.Errorf("Unmarshal(%s) should fail", input)
		}
	}
}

func TestWarningRecordJSONShape(t *testing.T) {
	rec := WarningRecord{
		Reason:    "spam",
		Moderator: 456789012345678901,
		Timestamp: NewISOTime(time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	// The moderator must serialize as a JSON number, not a string
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	if _, ok := raw["reason"].(string); !ok {
		t.Errorf("reason field missing or not a string: %v", raw)
	}
	if _, ok := raw["moderator"].(float64); !ok {
		t.Errorf("moderator field missing or not a number: %v", raw)
	}
	if _, ok := raw["timestamp"].(string); !ok {
		t.Errorf("timestamp field missing or not a string: %v", raw)
	}

	var back WarningRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Moderator != rec.Moderator {
		t.Errorf("moderator = %d, want %d", back.Moderator, rec.Moderator)
	}
}
