package root

import (
	"fmt"
	"io"

	"goaltrack/internal/engine"
	"goaltrack/internal/storage"
	"goaltrack/internal/ui"
)

// printEvents writes one line per gamification event.
func printEvents(w io.Writer, events []engine.Event, p storage.Profile) {
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case engine.EventXP:
			fmt.Fprintf(w, "%s %s\n", ui.Gold.Render(fmt.Sprintf("%s +%d XP", ui.IconBolt, e.XP)), ui.Muted.Render("progress"))
		case engine.EventStreakBonus:
			fmt.Fprintf(w, "%s %s\n", ui.Gold.Render(fmt.Sprintf("%s +%d XP", ui.IconFlame, e.XP)), ui.Muted.Render(fmt.Sprintf("%d-day streak", e.Streak)))
		case engine.EventDailyQuest:
			fmt.Fprintf(w, "%s %s\n", ui.Gold.Render(fmt.Sprintf("%s +%d XP", ui.IconTarget, e.XP)), ui.Good.Render("Daily quest complete!"))
		case engine.EventStatUp:
			fmt.Fprintf(w, "%s %s\n", ui.StatStyle(e.Stat).Render(fmt.Sprintf("%s %s +1", ui.StatIcon(e.Stat), e.Stat.Name())), ui.Muted.Render(fmt.Sprintf("(now %d)", e.Value)))
		case engine.EventLevelUp:
			fmt.Fprintf(w, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", e.Level-e.Levels, e.Level)))
		case engine.EventBadge:
			fmt.Fprintf(w, "%s %s %s\n", ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"), e.Badge.Icon, ui.Key.Render(e.Badge.Name))
		}
	}
	next := engine.XPRequiredForLevel(p.Level)
	fmt.Fprintf(w, "%s %s %s\n",
		ui.LabelValue("Level", p.Level),
		ui.ProgressBar(float64(p.XP)/float64(next), 20),
		ui.Muted.Render(fmt.Sprintf("%d/%d XP", p.XP, next)))
}
