// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario y aplica sanciones automáticas",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command. Recording the warning and
// replying always happen; the automatic escalation runs afterwards and its
// failures never undo the warning itself.
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return sendError(ctx, "Debes especificar un usuario.")
	}

	if user.Bot {
		return sendError(ctx, "No puedes advertir a un bot.")
	}

	if !hierarchyAllows(ctx, user) {
		return sendError(ctx, "No puedes advertir a alguien con un rol igual o superior al tuyo.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		reason = moderation.DefaultReason
	}

	guild := models.GuildID(ctx.Interaction.GuildID)
	result, saveErr := deps.Engine.RecordWarning(
		guild,
		models.UserID(user.ID),
		models.UserID(ctx.User().ID),
		reason,
	)

	embed := &discordgo.MessageEmbed{
		Title:       "Usuario advertido",
		Description: fmt.Sprintf("⚠️ <@%s> ha recibido una advertencia.", user.ID),
		Color:       0xFEE75C, // Amarillo
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Razón", Value: reason},
			{Name: "Cantidad de advertencias", Value: fmt.Sprintf("%d", result.NewCount)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("ID del usuario: %s", user.ID),
		},
	}
	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	if saveErr != nil {
		logger.Error(fmt.Sprintf("Error guardando advertencia: %v", saveErr), "CMD-Warn")
		ctx.FollowUpEphemeral("⚠️ La advertencia se registró en memoria pero no se pudo guardar en disco. Puede perderse al reiniciar el bot.")
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:     guild,
		Action:    "Warning",
		Target:    user,
		Moderator: ctx.User(),
		Reason:    fmt.Sprintf("%s (advertencia #%d)", reason, result.NewCount),
	})

	if result.Triggered != nil {
		executeEscalation(ctx, *result.Triggered, user, result.NewCount)
	}
	return nil
}

// executeEscalation applies the threshold action and announces it in the
// channel. The warning already stands at this point, so failures are
// reported but never propagated.
func executeEscalation(ctx *discord.CommandContext, action models.Action, user *discordgo.User, count int) {
	guild := models.GuildID(ctx.Interaction.GuildID)
	autoReason := fmt.Sprintf("Sanción automática: %d advertencias acumuladas", count)

	if err := deps.Executor.Execute(action, guild, models.UserID(user.ID), autoReason); err != nil {
		logger.Error(fmt.Sprintf("Error aplicando sanción automática (%s): %v", action, err), "CMD-Warn")
		ctx.Session.ChannelMessageSend(
			ctx.Interaction.ChannelID,
			fmt.Sprintf("⚠️ <@%s> alcanzó %d advertencias pero no pude aplicar la sanción automática (%s). Revisa mis permisos.", user.ID, count, action.Title()),
		)
		return
	}

	var description string
	duration := ""
	switch action {
	case models.ActionTimeout:
		description = fmt.Sprintf("🔇 <@%s> ha sido silenciado automáticamente por 1 hora.", user.ID)
		duration = "1 hora"
	case models.ActionKick:
		description = fmt.Sprintf("👢 <@%s> ha sido expulsado automáticamente del servidor.", user.ID)
	case models.ActionBan:
		description = fmt.Sprintf("🔨 <@%s> ha sido baneado automáticamente del servidor.", user.ID)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Acción automática: %s", action.Title()),
		Description: description,
		Color:       0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Motivo", Value: fmt.Sprintf("Acumulación de %d advertencias", count)},
		},
	}
	if _, err := ctx.Session.ChannelMessageSendEmbed(ctx.Interaction.ChannelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo anunciar la sanción automática: %v", err), "CMD-Warn")
	}

	deps.Audit.Log(moderation.ActionRecord{
		Guild:     guild,
		Action:    fmt.Sprintf("Auto-%s", action.Title()),
		Target:    user,
		Moderator: ctx.Session.State.User,
		Reason:    autoReason,
		Duration:  duration,
	})
}
