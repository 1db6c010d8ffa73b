// Package database - moderation-action archive operations.
package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

const modActionsCollection = "mod_actions"

var errNotConnected = errors.New("database not connected")

// ArchiveModAction inserts a moderation action into the archive. It is a
// best-effort operation: when the archive is offline the document is
// dropped and the caller just logs the failure.
func ArchiveModAction(doc models.ModActionDocument) error {
	d := Get()
	if d == nil || !d.Connected() {
		return errNotConnected
	}

	col := d.Collection(modActionsCollection)
	if col == nil {
		return errNotConnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := col.InsertOne(ctx, doc)
	return err
}

// RecentModActions returns the latest archived actions for a guild, newest
// first, capped at limit.
func RecentModActions(guildID models.GuildID, limit int64) ([]models.ModActionDocument, error) {
	d := Get()
	if d == nil || !d.Connected() {
		return nil, errNotConnected
	}

	col := d.Collection(modActionsCollection)
	if col == nil {
		return nil, errNotConnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := col.Find(ctx, bson.M{"guildId": guildID.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []models.ModActionDocument
	for cursor.Next(ctx) {
		var doc models.ModActionDocument
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, doc)
	}
	return results, cursor.Err()
}
