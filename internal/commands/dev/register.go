package dev

import (
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient) {
	evalCmd := CreateEvalCommand()

	// Build the /dev command group with all subcommands
	devGroup := client.CommandHandler.BuildCommandGroup(
		"dev",
		"Comandos de desarrollo",
		evalCmd,
	)

	// Register the command group as dev-only command
	client.CommandHandler.AddDevCommand(devGroup)
}
