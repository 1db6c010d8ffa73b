package models

import "testing"

func TestActionRoundTrip(t *testing.T) {
	actions := []Action{ActionTimeout, ActionKick, ActionBan}

	for _, action := range actions {
		t.Run(action.String(), func(t *testing.T) {
			parsed, err := ParseAction(action.String())
			if err != nil {
				t.Fatalf("ParseAction(%q) returned error: %v", action.String(), err)
			}
			if parsed != action {
				t.Errorf("ParseAction(%q) = %v, want %v", action.String(), parsed, action)
			}
		})
	}
}

func TestParseActionUnknown(t *testing.T) {
	if _, err := ParseAction("explode"); err == nil {
		t.Error("ParseAction should reject unknown tags")
	}
	if _, err := ParseAction(""); err == nil {
		t.Error("ParseAction should reject the empty tag")
	}
}

func TestActionTitle(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionTimeout, "Timeout"},
		{ActionKick, "Kick"},
		{ActionBan, "Ban"},
	}

	for _, tt := range tests {
		if got := tt.action.Title(); got != tt.want {
			t.Errorf("Title() = %v, want %v", got, tt.want)
		}
	}
}
