// Package mod - /mod clearwarnings command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
)

// createClearWarningsCommand creates the /mod clearwarnings subcommand
func createClearWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarnings",
		"Elimina todas las advertencias de un usuario",
		"mod",
		clearWarningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario cuyas advertencias se eliminarán",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// clearWarningsHandler handles the /mod clearwarnings command
func clearWarningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	guild := models.GuildID(ctx.Interaction.GuildID)
	removed := deps.Engine.ClearWarnings(guild, models.UserID(user.ID))

	if removed == 0 {
		embed := &discordgo.MessageEmbed{
			Title:       "Sin advertencias",
			Description: fmt.Sprintf("<@%s> no tenía advertencias que eliminar.", user.ID),
			Color:       0x57F287,
		}
		return ctx.ReplyEphemeralEmbed(embed)
	}

	if err := deps.Store.Save(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando limpieza de advertencias: %v", err), "CMD-ClearWarnings")
		return sendError(ctx, "Las advertencias se limpiaron en memoria pero no se pudo guardar el cambio en disco.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Advertencias eliminadas",
		Description: fmt.Sprintf("🧾 Se eliminaron **%d** advertencia(s) de <@%s>.", removed, user.ID),
		Color:       0x57F287,
	}
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:     guild,
		Action:    "Clear Warnings",
		Target:    user,
		Moderator: ctx.User(),
		Reason:    fmt.Sprintf("Se eliminaron %d advertencias", removed),
	})
	return nil
}
