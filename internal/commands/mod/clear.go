// Package mod - /mod clear command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
)

// createClearCommand creates the /mod clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Elimina mensajes del canal actual",
		"mod",
		clearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de mensajes a eliminar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Eliminar solo mensajes de este usuario",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// clearHandler handles the /mod clear command
func clearHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("cantidad"))
	if amount < 1 || amount > 100 {
		return sendError(ctx, "La cantidad debe estar entre 1 y 100.")
	}

	filterUser := ctx.GetUserOption("usuario")

	// La descarga y el borrado pueden tardar más de los 3 segundos que
	// Discord concede para responder
	if err := ctx.DeferEphemeral(); err != nil {
		return err
	}

	messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, amount, "", "", "")
	if err != nil {
		return ctx.EditReply(fmt.Sprintf("No se pudieron obtener los mensajes del canal: %v", err))
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		if filterUser != nil && msg.Author.ID != filterUser.ID {
			continue
		}
		ids = append(ids, msg.ID)
	}

	if len(ids) == 0 {
		return ctx.EditReply("No se encontraron mensajes para eliminar.")
	}

	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
		// El borrado masivo falla con mensajes de más de 14 días
		return ctx.EditReply("No se pudieron eliminar los mensajes. Los mensajes con más de 14 días no se pueden borrar en masa.")
	}

	if err := ctx.EditReply(fmt.Sprintf("🧹 Se eliminaron %d mensajes.", len(ids))); err != nil {
		return err
	}

	rec := moderation.ActionRecord{
		Guild:       models.GuildID(ctx.Interaction.GuildID),
		Action:      "Clear",
		TargetLabel: fmt.Sprintf("%d mensajes en <#%s>", len(ids), ctx.Interaction.ChannelID),
		Moderator:   ctx.User(),
		Reason:      fmt.Sprintf("Limpieza de %d mensajes", len(ids)),
	}
	if filterUser != nil {
		rec.Target = filterUser
		rec.TargetLabel = ""
	}
	deps.Audit.Log(rec)
	return nil
}
