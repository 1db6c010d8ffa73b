// Package database provides the MongoDB connection used for the
// moderation-action archive. The archive is a secondary store: the bot
// stays fully functional when Mongo is offline, it just stops archiving.
package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/WardenLabs/WardenBotGo/pkg/logger"
)

// Database manages the MongoDB connection for the archive.
type Database struct {
	client      *mongo.Client
	db          *mongo.Database
	isConnected bool
	mu          sync.RWMutex
}

var (
	database *Database
	dbOnce   sync.Once
)

// Init initializes the global database instance and connects to MongoDB.
func Init(mongoURL, dbName string) (*Database, error) {
	var err error
	dbOnce.Do(func() {
		database = &Database{}
		err = database.Connect(mongoURL, dbName)
	})
	return database, err
}

// Get returns the global database instance. May be nil when Init was never
// called or returns a disconnected instance when Mongo is unreachable.
func Get() *Database {
	return database
}

// Connect establishes a connection to MongoDB and verifies it with a ping.
func (d *Database) Connect(mongoURL, dbName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isConnected {
		return nil
	}

	logger.System("Conectando al archivo de moderación (MongoDB)...", "DB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Warn("Fallo al conectar con MongoDB. El archivo de acciones queda deshabilitado.", "DB")
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Warn("Fallo al verificar la conexión con MongoDB. El archivo de acciones queda deshabilitado.", "DB")
		return err
	}

	d.client = client
	d.db = client.Database(dbName)
	d.isConnected = true

	logger.Success("Conectado exitosamente al archivo de moderación.", "DB")
	return nil
}

// Disconnect closes the database connection.
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		return err
	}
	d.isConnected = false
	logger.Warn("La base de datos ha sido desconectada", "DB")
	return nil
}

// Connected reports whether the archive connection is usable.
func (d *Database) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isConnected
}

// Ping measures the database response time.
func (d *Database) Ping() (time.Duration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.isConnected || d.client == nil {
		return 0, errNotConnected
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := d.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// GetStatus returns a human-readable connection status.
func (d *Database) GetStatus() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.client == nil {
		return "🔴 | Desconectado", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return "🔴 | Desconectado", false
	}
	return "🟢 | En linea", true
}

// Collection returns a collection handle, or nil when disconnected.
func (d *Database) Collection(name string) *mongo.Collection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return nil
	}
	return d.db.Collection(name)
}
