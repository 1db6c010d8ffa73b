// Package moderation implements the progressive-discipline engine: warning
// bookkeeping, threshold evaluation, escalation execution and audit
// logging. The engine itself is a pure decision function over the store;
// everything that talks to Discord lives in the executor and audit files.
package moderation

import (
	"strconv"
	"time"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
)

// DefaultReason replaces an empty or missing warning reason.
const DefaultReason = "No reason provided"

// Result is the outcome of recording a warning. Triggered is non-nil only
// when the new count exactly matches a configured threshold; the engine
// never executes the action itself.
type Result struct {
	NewCount  int
	Triggered *models.Action
}

// Engine evaluates warnings against the configured threshold table. It
// holds no state of its own: all reads and writes go through the injected
// store.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// NewEngine creates an Engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// RecordWarning appends a warning for (guild, user), persists the document
// and evaluates the threshold table against the new count.
//
// Threshold matching is exact: a count that skips a configured threshold
// triggers nothing for it. Append and persist are one logical step here so
// callers never have to sequence them; if the save fails the in-memory
// count has already advanced and is returned alongside the error, letting
// the caller tell the moderator that persistence failed.
func (e *Engine) RecordWarning(guild models.GuildID, user models.UserID, moderator models.UserID, reason string) (Result, error) {
	if reason == "" {
		reason = DefaultReason
	}

	modID, _ := strconv.ParseInt(moderator.String(), 10, 64)
	rec := models.WarningRecord{
		Reason:    reason,
		Moderator: modID,
		Timestamp: models.NewISOTime(e.now()),
	}

	newCount := e.store.AppendWarning(guild, user, rec)
	result := Result{NewCount: newCount}

	for _, threshold := range e.store.Thresholds() {
		if threshold.Count == newCount {
			action := threshold.Action
			result.Triggered = &action
			break
		}
	}

	if err := e.store.Save(); err != nil {
		return result, err
	}
	return result, nil
}

// ViewWarnings returns the ledger for (guild, user) in chronological order.
func (e *Engine) ViewWarnings(guild models.GuildID, user models.UserID) []models.WarningRecord {
	return e.store.ListWarnings(guild, user)
}

// ClearWarnings empties the ledger for (guild, user) and returns how many
// records were removed. The caller is responsible for persisting.
func (e *Engine) ClearWarnings(guild models.GuildID, user models.UserID) int {
	return e.store.ClearWarnings(guild, user)
}
