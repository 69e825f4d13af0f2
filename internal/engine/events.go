package engine

import (
	"fmt"
	"time"

	"goaltrack/internal/storage"
)

// EventKind classifies what a log produced.
type EventKind string

const (
	EventXP          EventKind = "xp"
	EventStreakBonus EventKind = "streak_bonus"
	EventDailyQuest  EventKind = "daily_quest"
	EventStatUp      EventKind = "stat_up"
	EventLevelUp     EventKind = "level_up"
	EventBadge       EventKind = "badge"
)

// Event is one discrete outcome of a log, in the order it happened.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind
	Goal string

	// XP awarded (xp, streak_bonus, daily_quest).
	XP int
	// Streak length behind a streak bonus.
	Streak int
	// Stat trained and its new value (stat_up).
	Stat  Stat
	Value int
	// New level and how many levels were gained (level_up).
	Level  int
	Levels int
	// Badge unlocked (badge).
	Badge Badge
}

// TotalXP sums the XP carried by events.
func TotalXP(events []Event) int {
	total := 0
	for _, e := range events {
		total += e.XP
	}
	return total
}

// JournalKindLog marks the raw logged change in the journal.
const JournalKindLog = "log"

// JournalEntries flattens a log result into journal rows stamped at.
func (r *LogResult) JournalEntries(at time.Time) []storage.JournalEntry {
	out := make([]storage.JournalEntry, 0, len(r.Events)+1)
	out = append(out, storage.JournalEntry{At: at, Day: r.Date, Goal: r.Goal, Kind: JournalKindLog, Amount: r.Delta, Detail: fmt.Sprintf("value=%d", r.Value)})
	for _, e := range r.Events {
		entry := storage.JournalEntry{At: at, Day: r.Date, Goal: r.Goal, Kind: string(e.Kind), Amount: e.XP}
		switch e.Kind {
		case EventStreakBonus:
			entry.Detail = fmt.Sprintf("streak=%d", e.Streak)
		case EventStatUp:
			entry.Amount = 1
			entry.Detail = fmt.Sprintf("%s=%d", e.Stat, e.Value)
		case EventLevelUp:
			entry.Amount = e.Levels
			entry.Detail = fmt.Sprintf("level=%d", e.Level)
		case EventBadge:
			entry.Detail = e.Badge.ID
		}
		out = append(out, entry)
	}
	return out
}

// XPKinds are the journal kinds that carry XP.
func XPKinds() []string {
	return []string{string(EventXP), string(EventStreakBonus), string(EventDailyQuest)}
}
