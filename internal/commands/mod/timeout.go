// Package mod - /mod timeout command
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createTimeoutCommand creates the /mod timeout subcommand
func createTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Silencia a un usuario por un tiempo determinado",
		"mod",
		timeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración en formato 30s, 5m, 2h o 1d",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del silencio",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

// timeoutHandler handles the /mod timeout command
func timeoutHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	if !hierarchyAllows(ctx, user) {
		return sendError(ctx, "No puedes silenciar a alguien con un rol igual o superior al tuyo.")
	}

	durationStr := ctx.GetStringOption("duracion")
	duration, clamped, err := moderation.ParseDuration(durationStr)
	if err != nil {
		return sendError(ctx, fmt.Sprintf("Formato de duración inválido: `%s`. Usa un número seguido de s, m, h o d (ej. 30m, 1h, 1d).", durationStr))
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = moderation.DefaultReason
	}

	until := time.Now().Add(duration)
	if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, &until); err != nil {
		return sendError(ctx, fmt.Sprintf("No tengo permisos para silenciar a ese usuario: %v", err))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Usuario silenciado",
		Description: fmt.Sprintf("🔇 <@%s> ha sido silenciado.", user.ID),
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Duración", Value: durationStr},
			{Name: "Razón", Value: reason},
		},
	}
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	if clamped {
		ctx.FollowUpEphemeral("La duración superaba el máximo de 28 días. El silencio se fijó en 28 días.")
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:     models.GuildID(ctx.Interaction.GuildID),
		Action:    "Timeout",
		Target:    user,
		Moderator: ctx.User(),
		Reason:    reason,
		Duration:  durationStr,
	})
	return nil
}
