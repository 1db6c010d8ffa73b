package models

import "fmt"

// Action is an automated escalation action triggered by a warning threshold.
type Action int

const (
	ActionTimeout Action = iota
	ActionKick
	ActionBan
)

// String returns the persisted tag for the action.
func (a Action) String() string {
	switch a {
	case ActionTimeout:
		return "timeout"
	case ActionKick:
		return "kick"
	case ActionBan:
		return "ban"
	default:
		return "unknown"
	}
}

// Title returns the display name used in embeds and audit entries.
func (a Action) Title() string {
	switch a {
	case ActionTimeout:
		return "Timeout"
	case ActionKick:
		return "Kick"
	case ActionBan:
		return "Ban"
	default:
		return "Unknown"
	}
}

// ParseAction converts a persisted tag ("timeout", "kick", "ban") back
// into an Action.
func ParseAction(tag string) (Action, error) {
	switch tag {
	case "timeout":
		return ActionTimeout, nil
	case "kick":
		return ActionKick, nil
	case "ban":
		return ActionBan, nil
	default:
		return 0, fmt.Errorf("unknown action tag: %q", tag)
	}
}
