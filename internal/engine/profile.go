package engine

import (
	"sort"

	"goaltrack/internal/storage"
)

// TopRank is held from level 100 upward.
const TopRank = "Shadow Monarch"

var rankTable = []struct {
	below int
	rank  string
}{
	{10, "E-Rank"},
	{20, "D-Rank"},
	{30, "C-Rank"},
	{45, "B-Rank"},
	{60, "A-Rank"},
	{80, "S-Rank"},
	{100, "National Level"},
}

// RankForLevel looks the level up in the fixed rank table.
func RankForLevel(level int) string {
	for _, r := range rankTable {
		if level < r.below {
			return r.rank
		}
	}
	return TopRank
}

type StatValue struct {
	Stat  Stat
	Value int
}

type ProfileSummary struct {
	Level       int
	Rank        string
	XP          int
	NextLevelXP int
	// Progress is XP / NextLevelXP in [0, 1).
	Progress        float64
	Stats           []StatValue
	Badges          []Badge
	QuestsCompleted int
}

func ComputeProfileView(p storage.Profile) ProfileSummary {
	level := max(p.Level, 1)
	next := XPRequiredForLevel(level)

	stats := make([]StatValue, 0, len(AllStats()))
	for _, st := range AllStats() {
		v, ok := p.Stats[string(st)]
		if !ok {
			v = storage.DefaultStatValue
		}
		stats = append(stats, StatValue{Stat: st, Value: v})
	}

	badges := make([]Badge, 0, len(p.Badges))
	for _, id := range p.Badges {
		b, _ := LookupBadge(id)
		badges = append(badges, b)
	}

	return ProfileSummary{
		Level:           level,
		Rank:            RankForLevel(level),
		XP:              p.XP,
		NextLevelXP:     next,
		Progress:        float64(p.XP) / float64(next),
		Stats:           stats,
		Badges:          badges,
		QuestsCompleted: len(QuestDays(p)),
	}
}

// QuestDays returns the days the daily quest was completed, ascending.
func QuestDays(p storage.Profile) []string {
	var days []string
	for day, done := range p.DailyQuests {
		if done {
			days = append(days, day)
		}
	}
	sort.Strings(days)
	return days
}
