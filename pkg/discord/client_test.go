package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestNewClientIntents verifies the session requests every gateway intent
// the moderation commands depend on
func TestNewClientIntents(t *testing.T) {
	c, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	required := discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentGuildModeration

	if got := c.Session.Identify.Intents; got&required != required {
		t.Errorf("Identify.Intents = %v, missing bits from %v", got, required)
	}
}

// TestNewClientHandlers verifies the command and event handlers are wired
func TestNewClientHandlers(t *testing.T) {
	c, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if c.Commands == nil {
		t.Error("Commands collection is nil")
	}
	if c.CommandHandler == nil {
		t.Error("CommandHandler is nil")
	}
	if c.EventHandler == nil {
		t.Error("EventHandler is nil")
	}
	if c.IsReady() {
		t.Error("a fresh client should not report ready")
	}
}
