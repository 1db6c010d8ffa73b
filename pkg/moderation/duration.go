package moderation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxTimeout is Discord's hard cap for member timeouts.
const MaxTimeout = 28 * 24 * time.Hour

// DurationError describes a duration string the parser rejected.
type DurationError struct {
	Input string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid duration %q: use a number followed by s, m, h or d (e.g. 30m, 1h, 1d)", e.Input)
}

// ParseDuration parses moderator-facing duration strings like "30s", "5m",
// "2h" or "1d". The returned bool reports whether the value was clamped to
// the 28-day maximum. Malformed suffixes, non-numeric amounts and
// non-positive values are errors.
func ParseDuration(input string) (time.Duration, bool, error) {
	if len(input) < 2 {
		return 0, false, &DurationError{Input: input}
	}

	var unit time.Duration
	switch {
	case strings.HasSuffix(input, "s"):
		unit = time.Second
	case strings.HasSuffix(input, "m"):
		unit = time.Minute
	case strings.HasSuffix(input, "h"):
		unit = time.Hour
	case strings.HasSuffix(input, "d"):
		unit = 24 * time.Hour
	default:
		return 0, false, &DurationError{Input: input}
	}

	amount, err := strconv.Atoi(input[:len(input)-1])
	if err != nil {
		return 0, false, &DurationError{Input: input}
	}
	if amount <= 0 {
		return 0, false, &DurationError{Input: input}
	}

	d := time.Duration(amount) * unit
	if d > MaxTimeout {
		return MaxTimeout, true, nil
	}
	return d, false, nil
}
