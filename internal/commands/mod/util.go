// Package mod - shared helpers for the moderation commands
package mod

import (
	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
)

// sendError replies with the standardized ephemeral error embed.
func sendError(ctx *discord.CommandContext, message string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       0xED4245, // Rojo
	}
	return ctx.ReplyEphemeralEmbed(embed)
}

// hierarchyAllows reports whether the invoking moderator may act on the
// target member. A moderator cannot act on someone whose highest role is
// at or above their own; the guild owner is exempt from the check.
func hierarchyAllows(ctx *discord.CommandContext, target *discordgo.User) bool {
	guild := ctx.Guild()
	if guild == nil {
		return false
	}

	invoker := ctx.User()
	if invoker.ID == guild.OwnerID {
		return true
	}

	invokerMember := ctx.Member()
	targetMember := guildMember(ctx, target.ID)
	if invokerMember == nil || targetMember == nil {
		// Sin información de roles no se puede validar; mejor denegar
		return false
	}

	return highestRolePosition(guild, targetMember.Roles) < highestRolePosition(guild, invokerMember.Roles)
}

// guildMember resolves a member from the state cache, falling back to the
// REST API when the cache misses.
func guildMember(ctx *discord.CommandContext, userID string) *discordgo.Member {
	member, err := ctx.Session.State.Member(ctx.Interaction.GuildID, userID)
	if err == nil && member != nil {
		return member
	}

	member, err = ctx.Session.GuildMember(ctx.Interaction.GuildID, userID)
	if err != nil {
		return nil
	}
	return member
}

// highestRolePosition returns the highest role position among roleIDs.
// The @everyone baseline is position 0, so members with no roles get -1.
func highestRolePosition(guild *discordgo.Guild, roleIDs []string) int {
	highest := -1
	for _, roleID := range roleIDs {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}
