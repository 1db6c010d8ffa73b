package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "config.json"))
}

func TestLoadCreatesDefaults(t *testing.T) {
	s := newTestStore(t)

	if err := s.Load(); err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}

	// The default document must be durable immediately, not only after the
	// first mutation
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("default document was not persisted: %v", err)
	}

	var doc ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("persisted default document does not parse: %v", err)
	}

	if doc.WarnThresholds["3"] != "timeout" ||
		doc.WarnThresholds["5"] != "kick" ||
		doc.WarnThresholds["7"] != "ban" {
		t.Errorf("default thresholds = %v, want 3:timeout 5:kick 7:ban", doc.WarnThresholds)
	}

	if len(doc.LogChannels) != 0 {
		t.Errorf("default log_channels should be empty, got %v", doc.LogChannels)
	}
	if len(doc.Warnings) != 0 {
		t.Errorf("default warnings should be empty, got %v", doc.Warnings)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	err := s.Load()
	if err == nil {
		t.Fatal("Load() on corrupt file should return an error")
	}

	var corrupt *ConfigCorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Load() error = %T, want *ConfigCorruptError", err)
	}
	if corrupt.Path != s.Path() {
		t.Errorf("ConfigCorruptError.Path = %v, want %v", corrupt.Path, s.Path())
	}

	// A corrupt file must never be overwritten with defaults
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{not valid json" {
		t.Error("corrupt file was rewritten on Load")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	guild := models.GuildID("123456789012345678")
	user := models.UserID("234567890123456789")
	stamp := models.NewISOTime(time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC))

	if err := s.SetLogChannel(guild, models.ChannelID("345678901234567890")); err != nil {
		t.Fatal(err)
	}
	s.AppendWarning(guild, user, models.WarningRecord{
		Reason:    "spam",
		Moderator: 456789012345678901,
		Timestamp: stamp,
	})
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	// Reload through a fresh store and verify every section survived
	s2 := New(path)
	if err := s2.Load(); err != nil {
		t.Fatal(err)
	}

	channel, ok := s2.GetLogChannel(guild)
	if !ok {
		t.Fatal("log channel was not persisted")
	}
	if channel != models.ChannelID("345678901234567890") {
		t.Errorf("log channel = %v, want 345678901234567890", channel)
	}

	records := s2.ListWarnings(guild, user)
	if len(records) != 1 {
		t.Fatalf("warnings length = %d, want 1", len(records))
	}
	if records[0].Reason != "spam" {
		t.Errorf("reason = %v, want spam", records[0].Reason)
	}
	if records[0].Moderator != 456789012345678901 {
		t.Errorf("moderator = %v, want 456789012345678901", records[0].Moderator)
	}
	if !records[0].Timestamp.Equal(stamp.Time) {
		t.Errorf("timestamp = %v, want %v", records[0].Timestamp, stamp)
	}
}

func TestSetLogChannelInvalid(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	guild := models.GuildID("123456789012345678")
	if err := s.SetLogChannel(guild, models.ChannelID("not-a-snowflake")); err == nil {
		t.Fatal("SetLogChannel should reject a non-numeric channel ID")
	}

	// The rejected write must not leave a bogus channel behind
	if _, ok := s.GetLogChannel(guild); ok {
		t.Error("a rejected channel ID was stored anyway")
	}
}

func TestGetLogChannelUnset(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.GetLogChannel("999999999999999999"); ok {
		t.Error("GetLogChannel on an unconfigured guild should return false")
	}
}

func TestAppendWarningCounts(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	guild := models.GuildID("1")
	user := models.UserID("2")
	rec := models.WarningRecord{Reason: "x", Timestamp: models.NewISOTime(time.Now())}

	for want := 1; want <= 5; want++ {
		if got := s.AppendWarning(guild, user, rec); got != want {
			t.Fatalf("AppendWarning #%d returned %d", want, got)
		}
	}

	// Ledgers are per (guild, user): another user starts at 1
	if got := s.AppendWarning(guild, models.UserID("3"), rec); got != 1 {
		t.Errorf("AppendWarning for a second user returned %d, want 1", got)
	}
	if got := s.AppendWarning(models.GuildID("9"), user, rec); got != 1 {
		t.Errorf("AppendWarning in a second guild returned %d, want 1", got)
	}
}

func TestClearWarnings(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	guild := models.GuildID("1")
	user := models.UserID("2")
	rec := models.WarningRecord{Reason: "x", Timestamp: models.NewISOTime(time.Now())}

	s.AppendWarning(guild, user, rec)
	s.AppendWarning(guild, user, rec)

	if got := s.ClearWarnings(guild, user); got != 2 {
		t.Errorf("ClearWarnings returned %d, want 2", got)
	}
	if got := len(s.ListWarnings(guild, user)); got != 0 {
		t.Errorf("warnings after clear = %d, want 0", got)
	}

	// Clearing an already-empty ledger is an idempotent no-op
	if got := s.ClearWarnings(guild, user); got != 0 {
		t.Errorf("second ClearWarnings returned %d, want 0", got)
	}
	if got := s.ClearWarnings("unknown", "unknown"); got != 0 {
		t.Errorf("ClearWarnings on unknown guild returned %d, want 0", got)
	}

	// The count resets: the next warning is #1 again
	if got := s.AppendWarning(guild, user, rec); got != 1 {
		t.Errorf("AppendWarning after clear returned %d, want 1", got)
	}
}

func TestListWarningsReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	guild := models.GuildID("1")
	user := models.UserID("2")
	s.AppendWarning(guild, user, models.WarningRecord{Reason: "original"})

	records := s.ListWarnings(guild, user)
	records[0].Reason = "mutated"

	if got := s.ListWarnings(guild, user)[0].Reason; got != "original" {
		t.Errorf("ledger was mutated through the returned slice: %v", got)
	}
}

func TestThresholdsOrderedAndFiltered(t *testing.T) {
	doc := &ConfigDocument{
		WarnThresholds: map[string]string{
			"7":    "ban",
			"3":    "timeout",
			"5":    "kick",
			"abc":  "kick",    // clave no numérica
			"4":    "explode", // acción desconocida
			"-1":   "ban",     // cuenta inválida
		},
	}
	doc.normalize()

	got := doc.thresholds()
	want := []Threshold{
		{Count: 3, Action: models.ActionTimeout},
		{Count: 5, Action: models.ActionKick},
		{Count: 7, Action: models.ActionBan},
	}

	if len(got) != len(want) {
		t.Fatalf("thresholds length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("thresholds[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSaveFailure(t *testing.T) {
	// Point the store at a path whose directory does not exist
	s := New(filepath.Join(t.TempDir(), "missing-dir", "config.json"))
	s.doc = DefaultDocument()

	err := s.Save()
	if err == nil {
		t.Fatal("Save() into a missing directory should fail")
	}

	var writeErr *PersistenceWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Save() error = %T, want *PersistenceWriteError", err)
	}
}
