// Package store owns the persisted configuration document of the bot:
// log-channel mappings, the warning threshold table and the per-guild
// warning ledger. All state lives in a single JSON file (config.json by
// default) that is rewritten in full on every persisting mutation.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// Store is the single owner of the ConfigDocument. The document is shared
// mutable state: the gateway dispatches interactions concurrently, so every
// read or write goes through one coarse mutex. The document is small and
// mutation is human-driven, so finer locking buys nothing.
type Store struct {
	path string
	mu   sync.Mutex
	doc  *ConfigDocument
}

// New creates a Store backed by the given file path. No I/O happens until
// Load is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the persisted document. On a missing file it constructs the
// default document and persists it immediately, so a fresh install is
// durable before the first command runs. An existing but unparseable file
// yields a ConfigCorruptError; the store never papers over a broken
// document with defaults.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("No existe "+s.path+", creando configuración por defecto", "Store")
		s.doc = DefaultDocument()
		return s.saveLocked()
	}
	if err != nil {
		return &ConfigCorruptError{Path: s.path, Err: err}
	}

	var doc ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ConfigCorruptError{Path: s.path, Err: err}
	}
	doc.normalize()
	s.doc = &doc
	return nil
}

// Save serializes the full in-memory document and replaces the backing
// file. The write goes to a temp file in the same directory followed by a
// rename, so a concurrent Load never observes a partial document. Save
// blocks until the write completed or failed; there is no write-behind.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return &PersistenceWriteError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return &PersistenceWriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceWriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceWriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &PersistenceWriteError{Path: s.path, Err: err}
	}
	return nil
}

// GetLogChannel returns the configured log channel for a guild, or false
// when logging is disabled for it.
func (s *Store) GetLogChannel(guild models.GuildID) (models.ChannelID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.doc.LogChannels[guild]
	if !ok {
		return "", false
	}
	return models.ChannelID(formatSnowflake(id)), true
}

// SetLogChannel records the log channel for a guild. A non-numeric channel
// ID is rejected before it can reach the document. It does not persist;
// the caller decides when to Save, which allows batching mutations.
func (s *Store) SetLogChannel(guild models.GuildID, channel models.ChannelID) error {
	id, err := parseSnowflake(channel.String())
	if err != nil {
		return fmt.Errorf("invalid channel id %q: %w", channel, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.LogChannels[guild] = id
	return nil
}

// Thresholds returns the escalation table ordered by warning count.
func (s *Store) Thresholds() []Threshold {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.thresholds()
}

// AppendWarning appends a record to the (guild, user) ledger and returns
// the resulting count. It does not persist by itself.
func (s *Store) AppendWarning(guild models.GuildID, user models.UserID, rec models.WarningRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	guildWarnings, ok := s.doc.Warnings[guild]
	if !ok {
		guildWarnings = make(map[models.UserID][]models.WarningRecord)
		s.doc.Warnings[guild] = guildWarnings
	}
	guildWarnings[user] = append(guildWarnings[user], rec)
	return len(guildWarnings[user])
}

// ListWarnings returns a copy of the (guild, user) ledger in insertion
// order. The copy keeps callers from mutating shared state.
func (s *Store) ListWarnings(guild models.GuildID, user models.UserID) []models.WarningRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.doc.Warnings[guild][user]
	out := make([]models.WarningRecord, len(records))
	copy(out, records)
	return out
}

// ClearWarnings resets the (guild, user) ledger and returns how many
// records were removed. Clearing an empty ledger returns 0 and is
// idempotent. It does not persist by itself.
func (s *Store) ClearWarnings(guild models.GuildID, user models.UserID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	guildWarnings, ok := s.doc.Warnings[guild]
	if !ok {
		return 0
	}
	previous := len(guildWarnings[user])
	if previous == 0 {
		return 0
	}
	guildWarnings[user] = []models.WarningRecord{}
	return previous
}

// Snowflake channel IDs are stored as JSON integers for compatibility with
// the original document format; discordgo works with string IDs.

func parseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func formatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}
