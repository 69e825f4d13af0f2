package engine

import "goaltrack/internal/storage"

const (
	// BaseXP is granted for every positive log.
	BaseXP = 10

	// StreakBonusPerDay is multiplied by the current streak, capped at StreakBonusCap.
	StreakBonusPerDay = 2
	StreakBonusCap    = 20

	// DailyQuestXP is granted once per day when exactly DailyQuestGoals goals
	// have positive progress today.
	DailyQuestXP    = 50
	DailyQuestGoals = 4

	// LevelXPStep scales the threshold: leaving level L costs L*LevelXPStep XP.
	LevelXPStep = 100
)

// XPRequiredForLevel returns the XP needed to leave the given level.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * LevelXPStep
}

// AddXP adds amount to the profile and levels up as many times as the pool
// allows, carrying the remainder. It returns the number of levels gained.
func AddXP(p *storage.Profile, amount int) int {
	if p.Level < 1 {
		p.Level = 1
	}
	p.XP += amount
	if p.XP < 0 {
		p.XP = 0
	}

	gained := 0
	for p.XP >= XPRequiredForLevel(p.Level) {
		p.XP -= XPRequiredForLevel(p.Level)
		p.Level++
		gained++
	}
	return gained
}

// StreakBonus is the extra XP for an ongoing streak longer than one day.
func StreakBonus(streak int) int {
	if streak <= 1 {
		return 0
	}
	return min(streak*StreakBonusPerDay, StreakBonusCap)
}
