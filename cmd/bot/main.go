// Package main is the entry point for the WardenBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WardenLabs/WardenBotGo/internal/commands"
	"github.com/WardenLabs/WardenBotGo/internal/commands/mod"
	"github.com/WardenLabs/WardenBotGo/internal/events"
	"github.com/WardenLabs/WardenBotGo/pkg/config"
	"github.com/WardenLabs/WardenBotGo/pkg/database"
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/errors"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/moderation"
	"github.com/WardenLabs/WardenBotGo/pkg/mqtt"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
	"github.com/WardenLabs/WardenBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando WardenBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Load the moderation config store. A missing file gets defaults; a
	// corrupt file aborts startup instead of silently wiping state.
	st := store.New(cfg.ConfigFile)
	if err := st.Load(); err != nil {
		logger.Critical(fmt.Sprintf("Error cargando %s: %v", cfg.ConfigFile, err), "Main")
		os.Exit(1)
	}

	// Initialize database (archivo histórico; el bot funciona sin ella)
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database - it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			if err := db.Disconnect(); err != nil {
				return
			}
		}
	}()

	// Initialize MQTT
	mqttClientID := "wardenbot"
	if !cfg.IsProd() {
		mqttClientID = "wardenbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, st)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Wire the moderation collaborators over the shared store and session
	modDeps := mod.Deps{
		Store:    st,
		Engine:   moderation.NewEngine(st),
		Executor: moderation.NewExecutor(discordClient.Session),
		Audit:    moderation.NewAuditLogger(discordClient.Session, st),
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient, modDeps)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	logger.Success("WardenBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando WardenBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
