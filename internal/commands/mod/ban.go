// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	if !hierarchyAllows(ctx, user) {
		return sendError(ctx, "No puedes banear a alguien con un rol igual o superior al tuyo.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = moderation.DefaultReason
	}

	days := int(ctx.GetIntOption("dias"))
	if days < 0 {
		days = 0
	}
	if days > 7 {
		days = 7
	}

	err := ctx.Session.GuildBanCreateWithReason(
		ctx.Interaction.GuildID,
		user.ID,
		reason,
		days,
	)
	if err != nil {
		return sendError(ctx, fmt.Sprintf("No tengo permisos para banear a ese usuario: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Usuario baneado",
		Description: fmt.Sprintf("🔨 <@%s> ha sido baneado del servidor.", user.ID),
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
		Action:    "Ban",
		Target:    user,
		Moderator: ctx.User(),
		Reason:    reason,
	})
	return nil
}
