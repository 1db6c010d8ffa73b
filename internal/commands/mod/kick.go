// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	if !hierarchyAllows(ctx, user) {
		return sendError(ctx, "No puedes expulsar a alguien con un rol igual o superior al tuyo.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = moderation.DefaultReason
	}

	err := ctx.Session.GuildMemberDeleteWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
	)
	if err != nil {
		return sendError(ctx, fmt.Sprintf("No tengo permisos para expulsar a ese usuario: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Usuario expulsado",
		Description: fmt.Sprintf("👢 <@%s> ha sido expulsado del servidor.", user.ID),
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Razón", Value: reason},
		},
	}
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:     models.GuildID(ctx.Interaction.GuildID),
		Action:    "Kick",
		Target:    user,
		Moderator: ctx.User(),
		Reason:    reason,
	})
	return nil
}
