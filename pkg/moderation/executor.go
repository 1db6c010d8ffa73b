package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// AutoTimeoutDuration is the timeout applied when a warning threshold
// triggers ActionTimeout.
const AutoTimeoutDuration = time.Hour

// Executor performs escalation actions against the Discord API. It is the
// only place where a triggered Action turns into a platform side effect,
// which keeps the engine testable without a live session.
type Executor struct {
	session *discordgo.Session
}

// NewExecutor creates an Executor bound to a session.
func NewExecutor(session *discordgo.Session) *Executor {
	return &Executor{session: session}
}

// Execute applies the given action to (guild, user) with the given audit
// reason. For timeouts the fixed one-hour automatic duration is used.
func (x *Executor) Execute(action models.Action, guild models.GuildID, user models.UserID, reason string) error {
	switch action {
	case models.ActionTimeout:
		until := time.Now().Add(AutoTimeoutDuration)
		return x.session.GuildMemberTimeout(guild.String(), user.String(), &until)
	case models.ActionKick:
		return x.session.GuildMemberDeleteWithReason(guild.String(), user.String(), reason)
	case models.ActionBan:
		return x.session.GuildBanCreateWithReason(guild.String(), user.String(), reason, 0)
	}
	return nil
}
