// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WardenLabs/WardenBotGo/pkg/database"
	"github.com/WardenLabs/WardenBotGo/pkg/discord"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
)

// SetupAPIRoutes sets up the API routes. The store powers the read-only
// moderation endpoints; writes only ever happen through slash commands.
func SetupAPIRoutes(s *Server, st *store.Store) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:id/warnings/:userId", warningsHandler(st))
		api.GET("/guilds/:id/actions", actionsHandler)
	}

	s.Engine().GET("/ws/modlog", modLogStreamHandler)
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus := "🔴 | Desconectado"
	dbOnline := false
	if db != nil {
		dbStatus, dbOnline = db.GetStatus()
	}

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "WardenBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// warningsHandler returns the warning ledger for a guild member
func warningsHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guild := models.GuildID(c.Param("id"))
		user := models.UserID(c.Param("userId"))

		warnings := st.ListWarnings(guild, user)

		c.JSON(http.StatusOK, gin.H{
			"guildId":  guild.String(),
			"userId":   user.String(),
			"count":    len(warnings),
			"warnings": warnings,
		})
	}
}

// actionsHandler returns the recent archived moderation actions for a guild
func actionsHandler(c *gin.Context) {
	guild := models.GuildID(c.Param("id"))

	actions, err := database.RecentModActions(guild, 50)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Archive Offline",
			"message": "El archivo de acciones no está disponible en este momento.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": guild.String(),
		"count":   len(actions),
		"actions": actions,
	})
}
