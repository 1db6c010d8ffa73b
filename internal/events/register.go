// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, member)
package events

import (
	"fmt"

	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	logger.Success(fmt.Sprintf("✅ %d eventos registrados correctamente", client.EventHandler.Count()), "Events")
}
