// Package mod - /setup command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// createSetupCommand creates the /setup command
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"Configura el bot de moderación para este servidor",
		"mod",
		setupHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal donde se enviarán los logs de moderación",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// setupHandler handles the /setup command
func setupHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return sendError(ctx, "Debes especificar un canal de texto válido.")
	}

	guild := models.GuildID(ctx.Interaction.GuildID)
	if err := deps.Store.SetLogChannel(guild, models.ChannelID(channel.ID)); err != nil {
		logger.Error(fmt.Sprintf("ID de canal inválido en setup: %v", err), "CMD-Setup")
		return sendError(ctx, "El canal seleccionado no es válido.")
	}

	if err := deps.Store.Save(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando configuración de setup: %v", err), "CMD-Setup")
		return sendError(ctx, "No se pudo guardar la configuración. Inténtalo de nuevo.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Configuración completada",
		Description: fmt.Sprintf("Los logs de moderación se enviarán a <#%s>", channel.ID),
		Color:       0xED4245,
	}
	return ctx.ReplyEmbed(embed)
}
