package moderation

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
	"github.com/WardenLabs/WardenBotGo/pkg/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "config.json"))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	return NewEngine(s)
}

func TestRecordWarningThresholds(t *testing.T) {
	e := newTestEngine(t)
	guild := models.GuildID("100")
	user := models.UserID("200")
	mod := models.UserID("300")

	// With the stock table only counts 3, 5 and 7 trigger; everything in
	// between must pass silently
	expected := map[int]models.Action{
		3: models.ActionTimeout,
		5: models.ActionKick,
		7: models.ActionBan,
	}

	for count := 1; count <= 8; count++ {
		result, err := e.RecordWarning(guild, user, mod, "spam")
		if err != nil {
			t.Fatalf("RecordWarning #%d: %v", count, err)
		}
		if result.NewCount != count {
			t.Fatalf("NewCount = %d, want %d", result.NewCount, count)
		}

		want, shouldTrigger := expected[count]
		if shouldTrigger {
			if result.Triggered == nil {
				t.Errorf("warning #%d should trigger %v, got nothing", count, want)
			} else if *result.Triggered != want {
				t.Errorf("warning #%d triggered %v, want %v", count, *result.Triggered, want)
			}
		} else if result.Triggered != nil {
			t.Errorf("warning #%d triggered %v, want nothing", count, *result.Triggered)
		}
	}
}

func TestRecordWarningDefaultReason(t *testing.T) {
	e := newTestEngine(t)
	guild := models.GuildID("100")
	user := models.UserID("200")

	if _, err := e.RecordWarning(guild, user, "300", ""); err != nil {
		t.Fatal(err)
	}

	records := e.ViewWarnings(guild, user)
	if len(records) != 1 {
		t.Fatalf("warnings length = %d, want 1", len(records))
	}
	if records[0].Reason != DefaultReason {
		t.Errorf("reason = %q, want %q", records[0].Reason, DefaultReason)
	}
}

func TestRecordWarningModerator(t *testing.T) {
	e := newTestEngine(t)
	fixed := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	guild := models.GuildID("100")
	user := models.UserID("200")

	if _, err := e.RecordWarning(guild, user, "456789012345678901", "flood"); err != nil {
		t.Fatal(err)
	}

	rec := e.ViewWarnings(guild, user)[0]
	if rec.Moderator != 456789012345678901 {
		t.Errorf("moderator = %d, want 456789012345678901", rec.Moderator)
	}
	if !rec.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp, fixed)
	}
}

func TestWarningsAreIndependentPerUserAndGuild(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.RecordWarning("g1", "u1", "m", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.RecordWarning("g1", "u1", "m", "b"); err != nil {
		t.Fatal(err)
	}

	result, err := e.RecordWarning("g1", "u2", "m", "c")
	if err != nil {
		t.Fatal(err)
	}
	if result.NewCount != 1 {
		t.Errorf("second user's count = %d, want 1", result.NewCount)
	}

	result, err = e.RecordWarning("g2", "u1", "m", "d")
	if err != nil {
		t.Fatal(err)
	}
	if result.NewCount != 1 {
		t.Errorf("same user in another guild = %d, want 1", result.NewCount)
	}
}

func TestClearWarningsResetsEscalation(t *testing.T) {
	e := newTestEngine(t)
	guild := models.GuildID("100")
	user := models.UserID("200")

	for i := 0; i < 4; i++ {
		if _, err := e.RecordWarning(guild, user, "m", "spam"); err != nil {
			t.Fatal(err)
		}
	}

	if removed := e.ClearWarnings(guild, user); removed != 4 {
		t.Fatalf("ClearWarnings = %d, want 4", removed)
	}

	// After a clear the ladder starts over: warning #3 triggers again
	var triggered *models.Action
	for i := 0; i < 3; i++ {
		result, err := e.RecordWarning(guild, user, "m", "spam")
		if err != nil {
			t.Fatal(err)
		}
		triggered = result.Triggered
	}
	if triggered == nil || *triggered != models.ActionTimeout {
		t.Errorf("third warning after clear should trigger timeout, got %v", triggered)
	}
}

func TestRecordWarningConcurrent(t *testing.T) {
	e := newTestEngine(t)
	guild := models.GuildID("100")
	user := models.UserID("200")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := e.RecordWarning(guild, user, "m", "spam"); err != nil {
				t.Errorf("RecordWarning: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := len(e.ViewWarnings(guild, user)); got != n {
		t.Errorf("warnings after %d concurrent records = %d", n, got)
	}
}
