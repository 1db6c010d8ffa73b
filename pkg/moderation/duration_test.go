package moderation

import (
	"errors"
	"testing"
	"time"
)

func TestParseDurationUnits(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"28d", 28 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, clamped, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) returned error: %v", tt.input, err)
			}
			if clamped {
				t.Errorf("ParseDuration(%q) should not clamp", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDurationClamp(t *testing.T) {
	got, clamped, err := ParseDuration("29d")
	if err != nil {
		t.Fatalf("ParseDuration(29d) returned error: %v", err)
	}
	if !clamped {
		t.Error("ParseDuration(29d) should report clamping")
	}
	if got != MaxTimeout {
		t.Errorf("ParseDuration(29d) = %v, want %v", got, MaxTimeout)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	inputs := []string{"", "d", "5", "abc", "5x", "-5m", "0m", "h1"}

	for _, input := range inputs {
		t.Run("invalid_"+input, func(t *testing.T) {
			_, _, err := ParseDuration(input)
			if err == nil {
				t.Fatalf("ParseDuration(%q) should fail", input)
			}

			var durErr *DurationError
			if !errors.As(err, &durErr) {
				t.Errorf("ParseDuration(%q) error = %T, want *DurationError", input, err)
			}
		})
	}
}
