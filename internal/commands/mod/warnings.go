// Package mod - /mod warnings command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Muestra las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	records := deps.Engine.ViewWarnings(
		models.GuildID(ctx.Interaction.GuildID),
		models.UserID(user.ID),
	)

	if len(records) == 0 {
		embed := &discordgo.MessageEmbed{
			Title:       "Sin advertencias",
			Description: fmt.Sprintf("✅ <@%s> no tiene advertencias en este servidor.", user.ID),
			Color:       0x57F287, // Verde
		}
		return ctx.ReplyEphemeralEmbed(embed)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Advertencias de %s", user.Username),
		Description: fmt.Sprintf("<@%s> tiene **%d** advertencia(s).", user.ID, len(records)),
		Color:       0xFEE75C,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("ID del usuario: %s", user.ID),
		},
	}

	for i, rec := range records {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("Advertencia #%d", i+1),
			Value: fmt.Sprintf(
				"**Razón:** %s\n**Moderador:** <@%d>\n**Fecha:** <t:%d:f>",
				rec.Reason, rec.Moderator, rec.Timestamp.Unix(),
			),
		})
	}

	return ctx.ReplyEphemeralEmbed(embed)
}
