package store

import (
	"sort"
	"strconv"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// ConfigDocument is the full persisted state of the bot: the per-guild log
// channel map, the warning threshold table and the warning ledger. The
// document is always written to disk in full.
//
// On-disk shape:
//
//	{
//	    "log_channels": {"<guildId>": <channelId>, ...},
//	    "warn_thresholds": {"3": "timeout", "5": "kick", "7": "ban"},
//	    "warnings": {"<guildId>": {"<userId>": [ ... ], ...}, ...}
//	}
type ConfigDocument struct {
	LogChannels    map[models.GuildID]int64                              `json:"log_channels"`
	WarnThresholds map[string]string                                     `json:"warn_thresholds"`
	Warnings       map[models.GuildID]map[models.UserID][]models.WarningRecord `json:"warnings"`
}

// Threshold is one entry of the escalation table: reaching exactly Count
// warnings triggers Action.
type Threshold struct {
	Count  int
	Action models.Action
}

// DefaultDocument returns the document created on first run: no log
// channels, the stock 3/5/7 escalation table, and an empty ledger.
func DefaultDocument() *ConfigDocument {
	return &ConfigDocument{
		LogChannels: make(map[models.GuildID]int64),
		WarnThresholds: map[string]string{
			"3": "timeout",
			"5": "kick",
			"7": "ban",
		},
		Warnings: make(map[models.GuildID]map[models.UserID][]models.WarningRecord),
	}
}

// normalize fills in nil maps after decoding a document that omitted a
// top-level section value.
func (d *ConfigDocument) normalize() {
	if d.LogChannels == nil {
		d.LogChannels = make(map[models.GuildID]int64)
	}
	if d.WarnThresholds == nil {
		d.WarnThresholds = make(map[string]string)
	}
	if d.Warnings == nil {
		d.Warnings = make(map[models.GuildID]map[models.UserID][]models.WarningRecord)
	}
}

// thresholds converts the persisted table into a typed, count-ordered
// slice. Entries whose count or action tag does not parse are skipped:
// per the error model, a missing table entry simply means no action.
func (d *ConfigDocument) thresholds() []Threshold {
	out := make([]Threshold, 0, len(d.WarnThresholds))
	for countStr, tag := range d.WarnThresholds {
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			continue
		}
		action, err := models.ParseAction(tag)
		if err != nil {
			continue
		}
		out = append(out, Threshold{Count: count, Action: action})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	return out
}
