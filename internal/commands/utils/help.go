package utils

import (
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de WardenBot Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/setup <canal>` - Configura el canal de logs de moderación\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/mod warn <usuario> [razón]` - Advierte a un usuario\n" +
				"• `/mod warnings <usuario>` - Lista las advertencias\n" +
				"• `/mod clearwarnings <usuario>` - Elimina todas las advertencias\n" +
				"• `/mod ban <usuario> [razón] [días]` - Banea a un usuario\n" +
				"• `/mod unban <id> [razón]` - Desbanea por ID\n" +
				"• `/mod kick <usuario> [razón]` - Expulsa a un usuario\n" +
				"• `/mod timeout <usuario> <duración> [razón]` - Silencia temporalmente\n" +
				"• `/mod clear <cantidad> [usuario]` - Elimina mensajes\n\n" +
				"**Sanciones automáticas:** 3 advertencias → silencio, " +
				"5 → expulsión, 7 → baneo.",
		)
	}()
	return nil
}
