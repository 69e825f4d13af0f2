package engine

import (
	"sort"
	"time"
)

// BestDayNone is reported when no weekday has positive progress.
const BestDayNone = "none"

// GoalStats bundles everything derived from one goal history.
type GoalStats struct {
	CurrentStreak int
	LongestStreak int
	Total         int
	Average       float64
	BestDay       string
	ThisWeek      int
	LastWeek      int
	ActiveDays    int
}

// WeekDelta is this week's total minus last week's.
func (s GoalStats) WeekDelta() int {
	return s.ThisWeek - s.LastWeek
}

func ComputeGoalStats(history map[string]int, today time.Time) GoalStats {
	current, longest := ComputeStreaks(history, today)
	thisWeek, lastWeek := ComputeWeeklyComparison(history, today)
	return GoalStats{
		CurrentStreak: current,
		LongestStreak: longest,
		Total:         ComputeTotal(history),
		Average:       ComputeAverage(history, today),
		BestDay:       ComputeBestDay(history),
		ThisWeek:      thisWeek,
		LastWeek:      lastWeek,
		ActiveDays:    len(positiveDays(history)),
	}
}

// positiveDays returns the parsed days with a value > 0, ascending.
// Keys that are not valid dates are skipped.
func positiveDays(history map[string]int) []time.Time {
	days := make([]time.Time, 0, len(history))
	for key, v := range history {
		if v <= 0 {
			continue
		}
		d, err := ParseDay(key)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// ComputeStreaks returns the current and longest runs of consecutive days
// with positive progress. The current run may end today or yesterday.
func ComputeStreaks(history map[string]int, today time.Time) (current, longest int) {
	days := positiveDays(history)
	if len(days) == 0 {
		return 0, 0
	}

	positive := make(map[time.Time]bool, len(days))
	for _, d := range days {
		positive[d] = true
	}

	cursor := Day(today)
	if !positive[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for positive[cursor] {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

// ComputeTotal sums every stored value, negative adjustments included.
func ComputeTotal(history map[string]int) int {
	total := 0
	for _, v := range history {
		total += v
	}
	return total
}

// ComputeAverage divides the total by the days from the first positive entry
// through today, inclusive.
func ComputeAverage(history map[string]int, today time.Time) float64 {
	days := positiveDays(history)
	if len(days) == 0 {
		return 0
	}
	span := daysBetween(days[0], today) + 1
	if span < 1 {
		span = 1
	}
	return float64(ComputeTotal(history)) / float64(span)
}

// ComputeBestDay returns the weekday name with the largest positive sum,
// scanning Monday through Sunday so the earliest weekday wins ties.
func ComputeBestDay(history map[string]int) string {
	var sums [7]int // Monday..Sunday
	for key, v := range history {
		if v <= 0 {
			continue
		}
		d, err := ParseDay(key)
		if err != nil {
			continue
		}
		sums[(int(d.Weekday())+6)%7] += v
	}

	best, bestSum := -1, 0
	for i, sum := range sums {
		if sum > bestSum {
			best, bestSum = i, sum
		}
	}
	if best < 0 {
		return BestDayNone
	}
	return time.Weekday((best + 1) % 7).String()
}

// ComputeWeeklyComparison sums raw values for the Sunday-aligned week holding
// today and for the week before it.
func ComputeWeeklyComparison(history map[string]int, today time.Time) (thisWeek, lastWeek int) {
	start := WeekStart(today)
	next := start.AddDate(0, 0, 7)
	prev := start.AddDate(0, 0, -7)

	for key, v := range history {
		d, err := ParseDay(key)
		if err != nil {
			continue
		}
		switch {
		case !d.Before(start) && d.Before(next):
			thisWeek += v
		case !d.Before(prev) && d.Before(start):
			lastWeek += v
		}
	}
	return thisWeek, lastWeek
}

// WeekStart returns the most recent Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
