package engine

import (
	"time"

	"goaltrack/internal/storage"
)

// Reward runs the progression rules for one logged change of delta on date
// and returns the resulting events in order. The goal's history must already
// include the change. Non-positive deltas grant nothing.
func Reward(doc *storage.Document, goal *storage.Goal, date, today time.Time, delta int) []Event {
	if delta <= 0 {
		return nil
	}
	p := &doc.Profile
	today = Day(today)

	events := []Event{{Kind: EventXP, Goal: goal.Name, XP: BaseXP}}
	award := BaseXP

	streak, _ := ComputeStreaks(goal.History, today)
	if bonus := StreakBonus(streak); bonus > 0 {
		award += bonus
		events = append(events, Event{Kind: EventStreakBonus, Goal: goal.Name, XP: bonus, Streak: streak})
	}

	if Day(date).Equal(today) && dailyQuestMet(doc, today) {
		key := DayKey(today)
		if !p.DailyQuests[key] {
			if p.DailyQuests == nil {
				p.DailyQuests = map[string]bool{}
			}
			p.DailyQuests[key] = true
			award += DailyQuestXP
			events = append(events, Event{Kind: EventDailyQuest, Goal: goal.Name, XP: DailyQuestXP})
		}
	}

	if stat := parseStoredStat(goal.Stat); stat != StatNone {
		if p.Stats == nil {
			p.Stats = map[string]int{}
		}
		p.Stats[string(stat)]++
		events = append(events, Event{Kind: EventStatUp, Goal: goal.Name, Stat: stat, Value: p.Stats[string(stat)]})
	}

	if gained := AddXP(p, award); gained > 0 {
		events = append(events, Event{Kind: EventLevelUp, Goal: goal.Name, Level: p.Level, Levels: gained})
	}

	for _, b := range EvaluateBadges(doc, goal, today) {
		events = append(events, Event{Kind: EventBadge, Goal: goal.Name, Badge: b})
	}
	return events
}

// dailyQuestMet reports whether exactly DailyQuestGoals active goals have
// positive progress today.
func dailyQuestMet(doc *storage.Document, today time.Time) bool {
	key := DayKey(today)
	n := 0
	for _, g := range doc.Goals {
		if g.Archived {
			continue
		}
		if g.History[key] > 0 {
			n++
		}
	}
	return n == DailyQuestGoals
}
