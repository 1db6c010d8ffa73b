// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
)

// Deps carries the moderation collaborators the commands run against. They
// are constructed once in main and injected here; the command handlers hold
// no global state of their own.
type Deps struct {
	Store    *store.Store
	Engine   *moderation.Engine
	Executor *moderation.Executor
	Audit    *moderation.AuditLogger
}

// deps holds the injected collaborators for the lifetime of the process.
var deps Deps

// RegisterModCommands registers /setup and the /mod command group
func RegisterModCommands(client *discord.ExtendedClient, d Deps) {
	deps = d

	// /setup va como comando propio: es la puerta de entrada del bot
	setupCmd := createSetupCommand()
	client.CommandHandler.RegisterCommand(setupCmd)

	// Create individual subcommands (each can be in its own file)
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	kickCmd := createKickCommand()
	timeoutCmd := createTimeoutCommand()
	clearCmd := createClearCommand()
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	clearWarningsCmd := createClearWarningsCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		unbanCmd,
		kickCmd,
		timeoutCmd,
		clearCmd,
		warnCmd,
		warningsCmd,
		clearWarningsCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
