package moderation

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenBotGo/pkg/database"
	"github.com/WardenLabs/WardenBotGo/pkg/errors"
	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/mqtt"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
	"github.com/WardenLabs/WardenBotGo/pkg/web"
)

// ActionRecord describes a completed moderation action for the audit
// pipeline. Target is nil for non-user targets (an unban by raw ID, a
// channel purge); TargetLabel is used instead.
type ActionRecord struct {
	Guild       models.GuildID
	Action      string
	Target      *discordgo.User
	TargetLabel string
	Moderator   *discordgo.User
	Reason      string
	Duration    string
}

// AuditLogger fans a moderation action out to every configured sink: the
// guild's log channel, the Mongo archive, the MQTT topic and the live
// websocket stream. Only the log-channel embed is visible to the guild;
// the other sinks are best-effort and never surface failures to the
// moderator.
type AuditLogger struct {
	session *discordgo.Session
	store   *store.Store
}

// NewAuditLogger creates an AuditLogger over the given session and store.
func NewAuditLogger(session *discordgo.Session, s *store.Store) *AuditLogger {
	return &AuditLogger{session: session, store: s}
}

// Log records the action in every sink. A guild without a configured log
// channel skips the embed but still feeds the archive and streams.
func (a *AuditLogger) Log(rec ActionRecord) {
	a.sendEmbed(rec)

	doc := models.ModActionDocument{
		GuildID:   rec.Guild.String(),
		Action:    rec.Action,
		Moderator: rec.Moderator.ID,
		Reason:    rec.Reason,
		Duration:  rec.Duration,
		Timestamp: time.Now().UTC(),
	}
	if rec.Target != nil {
		doc.TargetID = rec.Target.ID
	} else {
		doc.TargetID = rec.TargetLabel
	}

	go func() {
		defer errors.RecoverMiddleware()()
		if err := database.ArchiveModAction(doc); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo archivar la acción en la DB: %v", err), "Audit")
		}
	}()
	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishModAction(doc)
	}()
	go func() {
		defer errors.RecoverMiddleware()()
		web.BroadcastModAction(doc)
	}()
}

// sendEmbed posts the audit embed to the guild's configured log channel.
// No-op when the guild has no log channel or the channel is gone.
func (a *AuditLogger) sendEmbed(rec ActionRecord) {
	channel, ok := a.store.GetLogChannel(rec.Guild)
	if !ok {
		return
	}

	reason := rec.Reason
	if reason == "" {
		reason = DefaultReason
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("⚒️ Acción de Moderación: %s", rec.Action),
		Color:     0xED4245, // Rojo, igual que el resto de acciones de moderación
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if rec.Target != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Usuario",
			Value: fmt.Sprintf("<@%s> (%s)", rec.Target.ID, rec.Target.Username),
		})
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("ID del usuario: %s", rec.Target.ID),
		}
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Objetivo",
			Value: rec.TargetLabel,
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  "Moderador",
			Value: fmt.Sprintf("<@%s> (%s)", rec.Moderator.ID, rec.Moderator.Username),
		},
		&discordgo.MessageEmbedField{
			Name:  "Razón",
			Value: reason,
		},
	)

	if rec.Duration != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Duración",
			Value: rec.Duration,
		})
	}

	if _, err := a.session.ChannelMessageSendEmbed(channel.String(), embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando log de moderación al canal %s: %v", channel, err), "Audit")
	}
}
