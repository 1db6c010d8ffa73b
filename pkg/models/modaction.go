package models

import "time"

// ModActionDocument is the archive record written to the "mod_actions"
// collection for every moderation action. The archive is a secondary,
// best-effort store; config.json remains the source of truth for
// warnings and guild settings.
type ModActionDocument struct {
	GuildID   string    `bson:"guildId" json:"guildId"`
	Action    string    `bson:"action" json:"action"`
	TargetID  string    `bson:"targetId" json:"targetId"`
	Moderator string    `bson:"moderator" json:"moderator"`
	Reason    string    `bson:"reason" json:"reason"`
	Duration  string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
