// Package mod - /mod unban command
package mod

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Desbanea a un usuario por su ID",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario baneado",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del desbaneo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the /mod unban command
func unbanHandler(ctx *discord.CommandContext) error {
	userID := ctx.GetStringOption("id")
	if _, err := strconv.ParseInt(userID, 10, 64); err != nil {
		return sendError(ctx, "Debes proporcionar un ID de usuario válido.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = moderation.DefaultReason
	}

	// Que el usuario no esté baneado es un resultado esperado, no un fallo
	if _, err := ctx.Session.GuildBan(ctx.Interaction.GuildID, userID); err != nil {
		return sendError(ctx, "Este usuario no está baneado.")
	}

	if err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID); err != nil {
		return sendError(ctx, fmt.Sprintf("No tengo permisos para desbanear usuarios: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Usuario desbaneado",
		Description: fmt.Sprintf("El usuario con ID %s ha sido desbaneado del servidor.", userID),
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Razón", Value: reason},
		},
	}
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:       models.GuildID(ctx.Interaction.GuildID),
		Action:      "Unban",
		TargetLabel: fmt.Sprintf("ID del usuario: %s", userID),
		Moderator:   ctx.User(),
		Reason:      reason,
	})
	return nil
}
