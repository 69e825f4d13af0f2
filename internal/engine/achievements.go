package engine

import (
	"strconv"
	"time"

	"goaltrack/internal/storage"
)

// Badge is a permanent achievement unlocked by a milestone predicate.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	check       func(BadgeContext) bool
}

// BadgeContext is the snapshot badge predicates are evaluated against.
type BadgeContext struct {
	GoalTotal     int
	CurrentStreak int
	ActiveGoals   int
}

// BadgeStatus pairs a badge with whether the profile holds it.
type BadgeStatus struct {
	Badge
	Earned bool
}

var badgeCatalog = []Badge{
	{ID: "first_step", Name: "First Step", Description: "Log your first progress", Icon: "🌱",
		check: func(c BadgeContext) bool { return c.GoalTotal > 0 }},

	// Lifetime totals of a single goal
	totalBadge("total_100", "Centurion", "🥉", 100),
	totalBadge("total_500", "Five Hundred", "🥈", 500),
	totalBadge("total_1000", "Thousand Club", "🥇", 1000),
	totalBadge("total_5000", "Legend", "🏆", 5000),

	// Current streak of a single goal
	streakBadge("streak_3", "Warming Up", "🔥", 3),
	streakBadge("streak_7", "Week Warrior", "⚔️", 7),
	streakBadge("streak_30", "Unbroken", "💎", 30),

	{ID: "multi_goal", Name: "Juggler", Description: "Keep 3 active goals", Icon: "🤹",
		check: func(c BadgeContext) bool { return c.ActiveGoals >= 3 }},
}

func totalBadge(id, name, icon string, total int) Badge {
	return Badge{
		ID: id, Name: name, Icon: icon,
		Description: "Reach a total of " + strconv.Itoa(total) + " on one goal",
		check:       func(c BadgeContext) bool { return c.GoalTotal >= total },
	}
}

func streakBadge(id, name, icon string, days int) Badge {
	return Badge{
		ID: id, Name: name, Icon: icon,
		Description: "Hold a " + strconv.Itoa(days) + "-day streak",
		check:       func(c BadgeContext) bool { return c.CurrentStreak >= days },
	}
}

// BadgeCatalog returns every badge definition in display order.
func BadgeCatalog() []Badge {
	out := make([]Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// LookupBadge finds a badge by id. Unknown ids get a placeholder badge so
// ids carried over from older files still display.
func LookupBadge(id string) (Badge, bool) {
	for _, b := range badgeCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{ID: id, Name: id, Icon: "🎖️"}, false
}

// BadgeStatuses lists the catalog with earned flags, followed by any held
// badges the catalog does not know.
func BadgeStatuses(p storage.Profile) []BadgeStatus {
	out := make([]BadgeStatus, 0, len(badgeCatalog))
	for _, b := range badgeCatalog {
		out = append(out, BadgeStatus{Badge: b, Earned: p.HasBadge(b.ID)})
	}
	for _, id := range p.Badges {
		if b, known := LookupBadge(id); !known {
			out = append(out, BadgeStatus{Badge: b, Earned: true})
		}
	}
	return out
}

// EvaluateBadges re-checks every badge for the goal just logged and records
// the ones that became true. Held badges are never removed.
func EvaluateBadges(doc *storage.Document, goal *storage.Goal, today time.Time) []Badge {
	current, _ := ComputeStreaks(goal.History, today)
	ctx := BadgeContext{
		GoalTotal:     ComputeTotal(goal.History),
		CurrentStreak: current,
		ActiveGoals:   countActiveGoals(doc),
	}

	var unlocked []Badge
	for _, b := range badgeCatalog {
		if doc.Profile.HasBadge(b.ID) {
			continue
		}
		if b.check(ctx) {
			doc.Profile.Badges = append(doc.Profile.Badges, b.ID)
			unlocked = append(unlocked, b)
		}
	}
	return unlocked
}

func countActiveGoals(doc *storage.Document) int {
	n := 0
	for _, g := range doc.Goals {
		if !g.Archived {
			n++
		}
	}
	return n
}
