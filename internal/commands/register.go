// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, utils, dev)
package commands

import (
	"github.com/WardenLabs/WardenBotGo/internal/commands/dev"
	"github.com/WardenLabs/WardenBotGo/internal/commands/mod"
	"github.com/WardenLabs/WardenBotGo/internal/commands/utils"
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, modDeps mod.Deps) {
	// Moderation commands (/setup, /mod ban, /mod kick, /mod warn, ...)
	mod.RegisterModCommands(client, modDeps)

	// Utility commands (/utils ping, /utils status, /utils help)
	utils.RegisterUtilsCommands(client)

	// Dev-only commands, registered solo en el servidor de desarrollo
	dev.Register(client)
}
