// Package models defines the data structures persisted by the bot.
package models

// GuildID identifies a Discord server. Kept as its own type so guild and
// user snowflakes cannot be mixed up in map keys.
type GuildID string

// UserID identifies a Discord user.
type UserID string

// ChannelID identifies a Discord channel.
type ChannelID string

// String returns the raw snowflake.
func (g GuildID) String() string { return string(g) }

// String returns the raw snowflake.
func (u UserID) String() string { return string(u) }

// String returns the raw snowflake.
func (c ChannelID) String() string { return string(c) }
